package job

import "time"

// Record is the read-only audit snapshot produced when a job reaches the
// end of its run. Created once at completion, never mutated afterwards.
type Record struct {
	JobID            string       `json:"job_id"`
	Description      string       `json:"description"`
	Status           Status       `json:"status"`
	StateTransitions []State      `json:"state_transitions"`
	Agent            *AgentConfig `json:"agent,omitempty"`
	RetryCount       int          `json:"retry_count"`
	MaxRetries       int          `json:"max_retries"`
	CostUSD          float64      `json:"cost_usd"`
	StartedAt        time.Time    `json:"started_at"`
	CompletedAt      time.Time    `json:"completed_at"`
	DurationMS       int64        `json:"duration_ms"`
}

// NewRecord builds the audit record for a completed or failed job. The
// transition list is the recorded history plus the final state. Duration
// is clamped to zero to tolerate clock skew.
func NewRecord(j *Job) *Record {
	now := time.Now().UTC()
	transitions := make([]State, 0, len(j.StateHistory)+1)
	transitions = append(transitions, j.StateHistory...)
	transitions = append(transitions, j.State)

	duration := now.Sub(j.CreatedAt).Milliseconds()
	if duration < 0 {
		duration = 0
	}

	var agent *AgentConfig
	if j.Agent != nil {
		a := *j.Agent
		agent = &a
	}

	return &Record{
		JobID:            j.ID,
		Description:      j.Description,
		Status:           j.Status,
		StateTransitions: transitions,
		Agent:            agent,
		RetryCount:       j.RetryCount,
		MaxRetries:       j.RetryConfig.MaxRetries,
		CostUSD:          j.EstimatedCostUSD(),
		StartedAt:        j.CreatedAt,
		CompletedAt:      now,
		DurationMS:       duration,
	}
}
