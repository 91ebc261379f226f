// Package todo breaks a free-text task description into a structured
// TODO list. With an API client it asks a model for the decomposition;
// without one it falls back to keyword heuristics that split on explicit
// list markers and conjunctions.
package todo

import (
	"strings"
	"unicode"

	"github.com/fyrsmithlabs/jobd/internal/router"
)

// Priority ranks a TODO item.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Item is a single actionable TODO entry. Skill is empty when no
// category could be inferred.
type Item struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Skill    string   `json:"skill,omitempty"`
}

var highPriorityKeywords = []string{"critical", "urgent", "block", "break", "crash", "security", "fix"}
var lowPriorityKeywords = []string{"doc", "readme", "comment", "format", "style", "typo", "rename"}

// GenerateFromKeywords produces TODO items from a prompt using heuristics
// only. Explicit list markers win over conjunction splitting; a prompt
// with neither becomes a plan/execute/verify trio.
func GenerateFromKeywords(prompt string) []Item {
	if items := itemize(splitExplicitList(prompt)); len(items) >= 2 {
		return items
	}
	if items := itemize(splitOnConjunctions(prompt)); len(items) >= 2 {
		return items
	}

	skill, _ := router.InferSkill(prompt)
	desc := capitalizeFirst(strings.TrimSpace(prompt))
	return []Item{
		{ID: 1, Title: "Plan approach for: " + desc, Priority: PriorityHigh},
		{ID: 2, Title: desc, Priority: inferPriority(prompt), Skill: skill},
		{ID: 3, Title: "Verify changes and run tests", Priority: PriorityMedium, Skill: "testing"},
	}
}

// itemize turns raw text fragments into numbered items, dropping blanks.
func itemize(parts []string) []Item {
	var items []Item
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		skill, _ := router.InferSkill(trimmed)
		items = append(items, Item{
			ID:       len(items) + 1,
			Title:    capitalizeFirst(trimmed),
			Priority: inferPriority(trimmed),
			Skill:    skill,
		})
	}
	return items
}

// splitExplicitList extracts lines marked as list items: "- ", "* ",
// "1. text" or "1) text". Unmarked lines are ignored.
func splitExplicitList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "- "):
			items = append(items, strings.TrimPrefix(trimmed, "- "))
		case strings.HasPrefix(trimmed, "* "):
			items = append(items, strings.TrimPrefix(trimmed, "* "))
		case len(trimmed) > 2 && trimmed[0] >= '0' && trimmed[0] <= '9':
			if pos := strings.IndexAny(trimmed, ".)"); pos >= 0 {
				if after := strings.TrimSpace(trimmed[pos+1:]); after != "" {
					items = append(items, after)
				}
			}
		}
	}
	return items
}

// splitOnConjunctions splits a sentence into clauses on ", then ",
// " and then ", " then " and " and ". Each delimiter splits each
// fragment at most once, applied in order.
func splitOnConjunctions(text string) []string {
	delimiters := []string{", then ", " and then ", " then ", " and "}

	parts := []string{text}
	for _, delim := range delimiters {
		var next []string
		for _, part := range parts {
			lower := strings.ToLower(part)
			pos := strings.Index(lower, delim)
			if pos < 0 {
				next = append(next, part)
				continue
			}
			if left := strings.TrimSpace(part[:pos]); left != "" {
				next = append(next, left)
			}
			if right := strings.TrimSpace(part[pos+len(delim):]); right != "" {
				next = append(next, right)
			}
		}
		parts = next
	}
	return parts
}

// inferPriority scans for urgency keywords; high markers beat low ones.
func inferPriority(text string) Priority {
	lower := strings.ToLower(text)
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// parsePriority normalizes a model-supplied priority, defaulting to medium.
func parsePriority(s string) Priority {
	switch strings.ToLower(s) {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
