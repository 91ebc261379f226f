package router

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fyrsmithlabs/jobd/internal/anthropic"
	"github.com/fyrsmithlabs/jobd/internal/job"
)

const classifyPrompt = `Classify this coding task. Respond with ONLY valid JSON, no other text.
Format: {"skill": "<skill>", "complexity": "<complexity>"}

skill must be one of: testing, refactoring, documentation, bug_fix, code_generation
complexity must be one of: simple, medium, complex

Task: %s`

// llmClassification is the raw JSON payload returned by the model.
type llmClassification struct {
	Skill      string `json:"skill"`
	Complexity string `json:"complexity"`
}

// ClassifyWithLLM asks the model to classify a job description, returning
// the skill and model tier. The skill is validated against the known set
// and falls back to the default when the model invents one; complexity
// maps simple→Haiku, complex→Opus, anything else→Sonnet.
//
// Transport and parse errors propagate; the caller is expected to fall
// back to RouteSkill and SelectModel.
func ClassifyWithLLM(ctx context.Context, sender anthropic.MessageSender, description string) (string, job.ModelTier, error) {
	req := &anthropic.MessagesRequest{
		Model:     job.TierHaiku.APIModel(),
		MaxTokens: 256,
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: fmt.Sprintf(classifyPrompt, description),
		}},
	}

	resp, err := sender.SendMessage(ctx, req)
	if err != nil {
		return "", "", err
	}

	var c llmClassification
	if err := json.Unmarshal([]byte(resp.FirstText()), &c); err != nil {
		return "", "", fmt.Errorf("failed to parse LLM classification: %w", err)
	}

	skill := c.Skill
	if !IsValidSkill(skill) {
		skill = DefaultSkill
	}

	var tier job.ModelTier
	switch c.Complexity {
	case "simple":
		tier = job.TierHaiku
	case "complex":
		tier = job.TierOpus
	default:
		tier = job.TierSonnet
	}

	return skill, tier, nil
}
