package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	j := New("Test", DefaultRetryConfig())

	assert.NotEmpty(t, j.ID)
	assert.Equal(t, StatusPending, j.Status)
	assert.Equal(t, StateInit, j.State)
	assert.Equal(t, 0, j.RetryCount)
	assert.Equal(t, 3, j.RetryConfig.MaxRetries)
	assert.Empty(t, j.StateHistory)
	assert.False(t, j.CreatedAt.IsZero())
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("one", DefaultRetryConfig())
	b := New("two", DefaultRetryConfig())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAssignAgent(t *testing.T) {
	j := New("Add login page", DefaultRetryConfig())
	require.Nil(t, j.Agent)

	j.AssignAgent("code_generation", TierSonnet)

	require.NotNil(t, j.Agent)
	assert.Equal(t, "code_generation", j.Agent.Skill)
	assert.Equal(t, TierSonnet, j.Agent.Model)
}

func TestEstimatedCostUSD(t *testing.T) {
	j := New("task", DefaultRetryConfig())
	assert.Zero(t, j.EstimatedCostUSD(), "no agent assigned yet")

	j.AssignAgent("testing", TierHaiku)
	assert.InDelta(t, 0.001, j.EstimatedCostUSD(), 1e-9)

	j.AssignAgent("testing", TierSonnet)
	assert.InDelta(t, 0.005, j.EstimatedCostUSD(), 1e-9)

	j.AssignAgent("testing", TierOpus)
	assert.InDelta(t, 0.05, j.EstimatedCostUSD(), 1e-9)
}

func TestModelTier_APIModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", TierHaiku.APIModel())
	assert.Equal(t, "claude-sonnet-4-5-20250929", TierSonnet.APIModel())
	assert.Equal(t, "claude-opus-4-6", TierOpus.APIModel())
}

func TestModelTier_Valid(t *testing.T) {
	assert.True(t, TierHaiku.Valid())
	assert.True(t, TierSonnet.Valid())
	assert.True(t, TierOpus.Valid())
	assert.False(t, ModelTier("gpt").Valid())
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "Business failure: tests failed", BusinessFailure("tests failed").String())
	assert.Equal(t, "System failure: API timeout", SystemFailure("API timeout").String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", Success().String())
	assert.Equal(t, "System failure: boom", Fail(SystemFailure("boom")).String())
}

func TestSanitize_ResetsLifecycle(t *testing.T) {
	j := New("tampered", DefaultRetryConfig())
	j.State = StateEnd
	j.Status = StatusCompleted
	j.RetryCount = 99
	j.StateHistory = []State{StateInit, StateDefineAgent, StateProcess}

	j.Sanitize()

	assert.Equal(t, StateInit, j.State)
	assert.Equal(t, StatusPending, j.Status)
	assert.Equal(t, 0, j.RetryCount)
	assert.Empty(t, j.StateHistory)
}

func TestJob_JSONRoundTrip(t *testing.T) {
	j := New("Serialize me", DefaultRetryConfig())
	j.AssignAgent("bug_fix", TierHaiku)

	data, err := json.Marshal(j)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, j.ID, decoded.ID)
	assert.Equal(t, "Serialize me", decoded.Description)
	assert.Equal(t, StateInit, decoded.State)
	require.NotNil(t, decoded.Agent)
	assert.Equal(t, TierHaiku, decoded.Agent.Model)
}
