// Package job defines the job data model and the lifecycle state machine.
// A job flows through INIT → DEFINE_AGENT → PROCESS → END, with bounded
// retries on failure and a full audit trail of every transition.
package job

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks the lifecycle status of a job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// AgentConfig is the execution strategy assigned to a job during the
// DEFINE_AGENT phase: a skill category and a model cost tier.
type AgentConfig struct {
	Skill string    `json:"skill" toml:"skill"`
	Model ModelTier `json:"model" toml:"model"`
}

// Job is a single unit of work and its mutable lifecycle state.
//
// A Job is exclusively owned by the flow driving it; only the state
// machine mutates State, RetryCount and StateHistory.
type Job struct {
	ID           string       `json:"id" toml:"id"`
	Description  string       `json:"description" toml:"description"`
	Status       Status       `json:"status" toml:"status"`
	State        State        `json:"state" toml:"state"`
	StateHistory []State      `json:"state_history" toml:"state_history"`
	RetryCount   int          `json:"retry_count" toml:"retry_count"`
	RetryConfig  RetryConfig  `json:"retry_config" toml:"retry_config"`
	Agent        *AgentConfig `json:"agent,omitempty" toml:"agent"`
	CreatedAt    time.Time    `json:"created_at" toml:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" toml:"updated_at"`
}

// New creates a pending job at the INIT state with a fresh id.
func New(description string, retry RetryConfig) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:           uuid.NewString(),
		Description:  description,
		Status:       StatusPending,
		State:        StateInit,
		StateHistory: []State{},
		RetryCount:   0,
		RetryConfig:  retry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AssignAgent sets the execution strategy for the job. Called exactly once
// during the DEFINE_AGENT phase; a later call would overwrite the previous
// assignment.
func (j *Job) AssignAgent(skill string, model ModelTier) {
	j.Agent = &AgentConfig{Skill: skill, Model: model}
	j.UpdatedAt = time.Now().UTC()
}

// EstimatedCostUSD returns the flat per-job cost of the assigned model
// tier, or 0 when no agent has been assigned.
func (j *Job) EstimatedCostUSD() float64 {
	if j.Agent == nil {
		return 0
	}
	return j.Agent.Model.CostUSD()
}

// Sanitize forces a clean lifecycle on an externally supplied job so a
// persisted record cannot inject a falsified history or bypass retry
// limits. Must be called before re-driving a loaded job.
func (j *Job) Sanitize() {
	j.State = StateInit
	j.Status = StatusPending
	j.RetryCount = 0
	j.StateHistory = []State{}
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	j.UpdatedAt = time.Now().UTC()
}
