package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/jobd/internal/anthropic"
	"github.com/fyrsmithlabs/jobd/internal/job"
)

// mockSender returns a canned response or error.
type mockSender struct {
	text string
	err  error

	lastReq *anthropic.MessagesRequest
}

func (m *mockSender) SendMessage(_ context.Context, req *anthropic.MessagesRequest) (*anthropic.MessagesResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &anthropic.MessagesResponse{
		ID:         "mock",
		Content:    []anthropic.ContentBlock{{Type: "text", Text: m.text}},
		Model:      "mock",
		StopReason: "end_turn",
	}, nil
}

func TestClassifyWithLLM_ValidResponse(t *testing.T) {
	sender := &mockSender{text: `{"skill":"bug_fix","complexity":"simple"}`}

	skill, tier, err := ClassifyWithLLM(context.Background(), sender, "fix the login bug")
	require.NoError(t, err)

	assert.Equal(t, "bug_fix", skill)
	assert.Equal(t, job.TierHaiku, tier)
}

func TestClassifyWithLLM_ComplexResponse(t *testing.T) {
	sender := &mockSender{text: `{"skill":"refactoring","complexity":"complex"}`}

	skill, tier, err := ClassifyWithLLM(context.Background(), sender, "refactor auth")
	require.NoError(t, err)

	assert.Equal(t, "refactoring", skill)
	assert.Equal(t, job.TierOpus, tier)
}

func TestClassifyWithLLM_MediumMapsToSonnet(t *testing.T) {
	sender := &mockSender{text: `{"skill":"testing","complexity":"medium"}`}

	skill, tier, err := ClassifyWithLLM(context.Background(), sender, "add tests")
	require.NoError(t, err)

	assert.Equal(t, "testing", skill)
	assert.Equal(t, job.TierSonnet, tier)
}

func TestClassifyWithLLM_UnknownSkillFallsBack(t *testing.T) {
	sender := &mockSender{text: `{"skill":"unknown_thing","complexity":"simple"}`}

	skill, tier, err := ClassifyWithLLM(context.Background(), sender, "do something")
	require.NoError(t, err)

	assert.Equal(t, DefaultSkill, skill)
	assert.Equal(t, job.TierHaiku, tier)
}

func TestClassifyWithLLM_InvalidJSON(t *testing.T) {
	sender := &mockSender{text: "not json"}

	_, _, err := ClassifyWithLLM(context.Background(), sender, "whatever")
	assert.Error(t, err)
}

func TestClassifyWithLLM_TransportErrorPropagates(t *testing.T) {
	sender := &mockSender{err: &anthropic.APIError{Status: 500, Message: "Internal Server Error"}}

	_, _, err := ClassifyWithLLM(context.Background(), sender, "anything")
	var apiErr *anthropic.APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestClassifyWithLLM_UsesHaikuTierModel(t *testing.T) {
	sender := &mockSender{text: `{"skill":"testing","complexity":"simple"}`}

	_, _, err := ClassifyWithLLM(context.Background(), sender, "add tests")
	require.NoError(t, err)

	require.NotNil(t, sender.lastReq)
	assert.Equal(t, job.TierHaiku.APIModel(), sender.lastReq.Model)
	assert.Equal(t, 256, sender.lastReq.MaxTokens)
}
