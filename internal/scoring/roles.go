package scoring

import "strings"

// defaultRoleKeywords maps a role family to a weighted keyword table used by
// the technical-accuracy heuristic when the caller does not supply one.
// Weights are relative; the heuristic normalizes by the table's total weight.
var defaultRoleKeywords = map[string]map[string]float64{
	"backend": {
		"api": 1.0, "database": 1.0, "scalability": 0.8, "caching": 0.6,
		"microservices": 0.8, "queue": 0.5, "latency": 0.6, "sql": 0.8,
		"performance": 0.6, "architecture": 0.8, "testing": 0.5,
	},
	"frontend": {
		"component": 1.0, "react": 0.8, "css": 0.6, "accessibility": 0.6,
		"state": 0.8, "performance": 0.6, "responsive": 0.5, "browser": 0.5,
		"javascript": 0.8, "testing": 0.5,
	},
	"data": {
		"pipeline": 1.0, "model": 0.8, "sql": 0.8, "etl": 0.6,
		"analysis": 0.8, "statistics": 0.6, "visualization": 0.5,
		"python": 0.6, "dataset": 0.6,
	},
	"devops": {
		"deployment": 1.0, "kubernetes": 0.8, "ci": 0.6, "monitoring": 0.8,
		"infrastructure": 0.8, "automation": 0.8, "docker": 0.6,
		"reliability": 0.6, "incident": 0.5,
	},
	"general": {
		"design": 0.8, "implement": 0.8, "test": 0.6, "debug": 0.6,
		"optimize": 0.6, "system": 0.8, "code": 0.6, "review": 0.4,
		"architecture": 0.6, "requirements": 0.5,
	},
}

// roleFamilies maps role-title fragments to a keyword table key.
var roleFamilies = []struct {
	fragment string
	family   string
}{
	{"backend", "backend"},
	{"back-end", "backend"},
	{"back end", "backend"},
	{"frontend", "frontend"},
	{"front-end", "frontend"},
	{"front end", "frontend"},
	{"data", "data"},
	{"machine learning", "data"},
	{"devops", "devops"},
	{"sre", "devops"},
	{"platform", "devops"},
	{"infrastructure", "devops"},
}

// keywordTableForRole returns the weighted keyword table for a role title,
// falling back to the general table.
func keywordTableForRole(role string) map[string]float64 {
	lower := strings.ToLower(role)
	for _, rf := range roleFamilies {
		if strings.Contains(lower, rf.fragment) {
			return defaultRoleKeywords[rf.family]
		}
	}
	return defaultRoleKeywords["general"]
}
