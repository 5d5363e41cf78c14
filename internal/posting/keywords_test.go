package posting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKeywordTable_WeightsProportionalToFrequency(t *testing.T) {
	texts := []string{
		"Kubernetes Kubernetes Kubernetes Docker Docker Terraform Terraform",
	}

	table := BuildKeywordTable(texts)

	require.NotNil(t, table)
	assert.Equal(t, 1.0, table["kubernetes"])
	assert.InDelta(t, 2.0/3.0, table["docker"], 1e-9)
	assert.InDelta(t, 2.0/3.0, table["terraform"], 1e-9)
}

func TestBuildKeywordTable_DropsSingletonsAndCommonWords(t *testing.T) {
	texts := []string{
		"The team works with Python and the team values experience. Python required.",
	}

	table := BuildKeywordTable(texts)

	require.NotNil(t, table)
	assert.Contains(t, table, "python")
	assert.NotContains(t, table, "team", "common words are excluded")
	assert.NotContains(t, table, "values", "single occurrences are excluded")
}

func TestBuildKeywordTable_MultipleDocuments(t *testing.T) {
	texts := []string{
		"Go services with gRPC and PostgreSQL",
		"PostgreSQL migrations and gRPC gateways",
	}

	table := BuildKeywordTable(texts)

	require.NotNil(t, table)
	assert.Contains(t, table, "grpc")
	assert.Contains(t, table, "postgresql")
}

func TestBuildKeywordTable_Empty(t *testing.T) {
	assert.Nil(t, BuildKeywordTable(nil))
	assert.Nil(t, BuildKeywordTable([]string{"nothing repeats here"}))
}

func TestBuildKeywordTable_CapsTableSize(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		word := "skillword" + string(rune('a'+i))
		sb.WriteString(word + " " + word + " ")
	}

	table := BuildKeywordTable([]string{sb.String()})

	assert.LessOrEqual(t, len(table), 20)
}

func TestExtractText_StripsChrome(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head><body>
		<nav>Home About</nav>
		<script>console.log("hi")</script>
		<main><p>Senior Go engineer wanted.</p><p>Experience with Kafka required.</p></main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := extractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go engineer wanted.")
	assert.Contains(t, text, "Kafka")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "Home About")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "color:red")
}
