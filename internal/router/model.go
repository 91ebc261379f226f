package router

import (
	"strings"

	"github.com/fyrsmithlabs/jobd/internal/job"
)

// weightedKeyword is a complexity signal with its score contribution.
type weightedKeyword struct {
	keyword string
	weight  int
}

var simpleKeywords = []weightedKeyword{
	{"rename", 10},
	{"format", 10},
	{"typo", 10},
	{"delete", 7},
	{"remove", 5},
	{"update", 3},
}

var complexKeywords = []weightedKeyword{
	{"architect", 10},
	{"refactor", 8},
	{"redesign", 10},
	{"migrate", 8},
	{"multi-file", 10},
	{"system", 5},
	{"overhaul", 10},
}

// SelectModel picks a model tier from the inferred complexity of the
// description. Keyword scores are combined with two length heuristics
// (short descriptions lean simple, long ones lean complex) and a word
// count heuristic. Haiku wins for clearly simple work, Opus for clearly
// complex work, Sonnet for everything ambiguous or balanced.
func SelectModel(description string) job.ModelTier {
	lower := strings.ToLower(description)

	simpleScore := 0
	complexScore := 0

	for _, kw := range simpleKeywords {
		if strings.Contains(lower, kw.keyword) {
			simpleScore += kw.weight
		}
	}
	for _, kw := range complexKeywords {
		if strings.Contains(lower, kw.keyword) {
			complexScore += kw.weight
		}
	}

	// Short descriptions tend to be simple, long ones complex.
	if len(description) < 20 {
		simpleScore += 5
	}
	if len(description) > 100 {
		complexScore += 5
	}

	// Many words indicate complexity.
	if len(strings.Fields(description)) > 15 {
		complexScore += 3
	}

	switch {
	case simpleScore > complexScore && simpleScore >= 5:
		return job.TierHaiku
	case complexScore > simpleScore && complexScore >= 5:
		return job.TierOpus
	default:
		return job.TierSonnet
	}
}
