package todo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/jobd/internal/anthropic"
	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/router"
)

// ErrEmptyList is returned when the model produces a valid response that
// contains no TODO items.
var ErrEmptyList = errors.New("LLM returned empty TODO list")

const generatePrompt = `Break down this task into actionable TODO items. Respond with ONLY valid JSON, no other text.

Format:
{"todos": [
  {"title": "<short imperative action>", "priority": "<high|medium|low>", "skill": "<skill_or_null>"}
]}

Rules:
- Each title must be a short, actionable imperative phrase (e.g., "Write unit tests for auth module")
- priority must be one of: high, medium, low
- skill must be one of: testing, refactoring, documentation, bug_fix, code_generation, or null
- Generate 2-8 TODO items, ordered by suggested execution sequence
- Assign high priority to foundational or blocking tasks, low to polish/docs

Task: %s`

type llmItem struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Skill    string `json:"skill"`
}

type llmResponse struct {
	Todos []llmItem `json:"todos"`
}

// GenerateWithLLM asks a model to decompose the prompt into TODO items.
// Transport and parse errors propagate so callers can fall back to
// GenerateFromKeywords. Skills outside the known set are dropped rather
// than kept.
func GenerateWithLLM(ctx context.Context, sender anthropic.MessageSender, prompt string) ([]Item, error) {
	req := &anthropic.MessagesRequest{
		Model:     job.TierHaiku.APIModel(),
		MaxTokens: 1024,
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: fmt.Sprintf(generatePrompt, prompt),
		}},
	}

	resp, err := sender.SendMessage(ctx, req)
	if err != nil {
		return nil, err
	}

	var parsed llmResponse
	if err := json.Unmarshal([]byte(resp.FirstText()), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse LLM TODO response: %w", err)
	}
	if len(parsed.Todos) == 0 {
		return nil, ErrEmptyList
	}

	items := make([]Item, 0, len(parsed.Todos))
	for i, raw := range parsed.Todos {
		skill := raw.Skill
		if !router.IsValidSkill(skill) {
			skill = ""
		}
		items = append(items, Item{
			ID:       i + 1,
			Title:    raw.Title,
			Priority: parsePriority(raw.Priority),
			Skill:    skill,
		})
	}
	return items, nil
}
