package scoring

// Phrase tables used by the breakdown heuristics. All entries are lowercase;
// matching is case-insensitive substring matching against the response.

var fillerWords = []string{
	"um", "uh", "you know", "sort of", "kind of", "basically",
	"literally", "i mean", "like i said",
}

var problemSolvingTerms = []string{
	"analyze", "analyzed", "approach", "solution", "solve", "solved",
	"identify", "identified", "evaluate", "evaluated", "consider",
	"considered", "trade-off", "tradeoff", "alternative", "root cause",
	"debug", "investigate", "investigated", "optimize", "optimized",
	"implement", "implemented", "prioritize", "prioritized", "break down",
	"strategy",
}

var sequenceMarkers = []string{
	"first", "second", "third", "then", "next", "after that", "finally",
	"step one", "step two", "lastly",
}

var confidentPhrases = []string{
	"i'm confident", "i am confident", "i know", "definitely", "certainly",
	"i led", "i drove", "i delivered", "i achieved", "without a doubt",
	"i'm sure", "i am sure", "successfully",
}

var uncertainPhrases = []string{
	"maybe", "i guess", "i think maybe", "not sure", "i'm not sure",
	"possibly", "i hope", "kind of hard", "i don't know", "perhaps",
}

var selfReferenceTerms = []string{
	"question", "answer", "experience",
}

var transitionWords = []string{
	"however", "therefore", "additionally", "furthermore", "moreover",
	"consequently", "in addition", "as a result", "on the other hand",
	"for instance",
}

var flowWords = []string{
	"because", "so that", "which led to", "in order to", "as a result",
	"this meant", "due to",
}

// STAR-method keyword sets. Each matched category contributes 25 points
// to the structure score.
var starCategories = map[string][]string{
	"situation": {"situation", "context", "at the time", "we were", "the team was", "background", "previous job", "when i"},
	"task":      {"task", "goal", "objective", "responsible for", "my role", "needed to", "had to"},
	"action":    {"i implemented", "i built", "i created", "i designed", "i led", "i decided", "i organized", "took action", "i worked"},
	"result":    {"result", "outcome", "improved", "increased", "reduced", "saved", "achieved", "impact", "delivered"},
}

var exampleIntroPhrases = []string{
	"for example", "for instance", "example", "instance", "one time",
	"previous job", "previous role", "at my previous", "at my last",
	"when i worked", "a project where", "such as", "specifically",
	"in one case",
}
