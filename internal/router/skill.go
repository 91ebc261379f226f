// Package router classifies a job description into an execution strategy:
// a skill category and a model cost tier. Two keyword-scoring heuristics
// cover the offline path; ClassifyWithLLM asks a model when a client is
// available, and callers fall back to the keyword path on any error.
package router

import "strings"

// DefaultSkill is assigned when no keyword matches a description.
const DefaultSkill = "code_generation"

// ValidSkills is the closed set of skill categories a job can be routed to.
var ValidSkills = []string{"testing", "refactoring", "documentation", "bug_fix", "code_generation"}

// skillKeyword maps a keyword substring to a skill with a weight.
type skillKeyword struct {
	keyword string
	skill   string
	weight  int
}

var skillKeywords = []skillKeyword{
	{"test", "testing", 10},
	{"spec", "testing", 5},
	{"refactor", "refactoring", 10},
	{"clean up", "refactoring", 5},
	{"doc", "documentation", 10},
	{"readme", "documentation", 5},
	{"fix", "bug_fix", 10},
	{"bug", "bug_fix", 10},
	{"debug", "bug_fix", 7},
	{"error", "bug_fix", 5},
	{"implement", "code_generation", 5},
	{"add", "code_generation", 3},
	{"create", "code_generation", 5},
	{"build", "code_generation", 5},
}

// RouteSkill assigns a skill to a description by weighted keyword scoring.
// Every keyword present as a substring adds its weight to that skill's
// bucket; overlapping substrings may double-count. The highest bucket
// wins; ties fall to map iteration order. With no match at all the
// default skill is returned.
func RouteSkill(description string) string {
	if skill, ok := InferSkill(description); ok {
		return skill
	}
	return DefaultSkill
}

// InferSkill is RouteSkill without the default: it reports false when no
// keyword matches at all.
func InferSkill(description string) (string, bool) {
	lower := strings.ToLower(description)

	scores := make(map[string]int)
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw.keyword) {
			scores[kw.skill] += kw.weight
		}
	}

	best := ""
	bestScore := 0
	for skill, score := range scores {
		if score > bestScore {
			best = skill
			bestScore = score
		}
	}
	return best, best != ""
}

// IsValidSkill reports whether s is one of the known skill categories.
func IsValidSkill(s string) bool {
	for _, v := range ValidSkills {
		if s == v {
			return true
		}
	}
	return false
}
