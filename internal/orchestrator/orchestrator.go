// Package orchestrator drives jobs through the full lifecycle state
// machine: validation at INIT, strategy selection at DEFINE_AGENT,
// execution with retry/backoff at PROCESS, and the audit record at END.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/jobd/internal/anthropic"
	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/router"
)

var (
	// ErrEmptyDescription rejects jobs with a blank description. This is
	// fatal at INIT and never enters the retry machinery.
	ErrEmptyDescription = errors.New("job description must not be empty")

	// ErrRetriesExhausted is returned when the PROCESS phase fails more
	// times than the job's retry budget allows.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

const processPromptPrefix = "You are an AI coding assistant. Please perform the following task:\n\n"

// Orchestrator runs jobs. A single Orchestrator may drive many jobs from
// separate goroutines; each Run call owns its job exclusively.
type Orchestrator struct {
	client        anthropic.MessageSender
	modelOverride job.ModelTier
	logger        *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClient sets the execution client. Without one, the PROCESS phase
// runs in stub mode and always succeeds.
func WithClient(client anthropic.MessageSender) Option {
	return func(o *Orchestrator) { o.client = client }
}

// WithModelOverride forces the model tier regardless of what
// classification would choose. The chosen skill is unaffected.
func WithModelOverride(tier job.ModelTier) Option {
	return func(o *Orchestrator) { o.modelOverride = tier }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// New creates an orchestrator.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run drives a job from INIT to END and returns its audit record.
//
// The only terminal outcomes are a returned record (the job reached END)
// or an error: ErrEmptyDescription for a blank description,
// ErrRetriesExhausted once the retry budget is spent, or a context error
// if the caller cancels during a backoff wait. No failure is silently
// dropped.
func (o *Orchestrator) Run(ctx context.Context, j *job.Job) (*job.Record, error) {
	// INIT: validate and mark in-progress.
	j.Status = job.StatusInProgress
	if strings.TrimSpace(j.Description) == "" {
		return nil, ErrEmptyDescription
	}
	t := job.Next(j, job.Success())
	if t.Kind != job.TransitionNext {
		return nil, fmt.Errorf("unexpected transition %q from %s", t.Kind, job.StateInit)
	}
	o.logger.Debug("job started",
		zap.String("job_id", j.ID),
		zap.String("description", j.Description),
	)

	// DEFINE_AGENT: route skill and select model.
	skill, tier := o.resolveAgent(ctx, j.Description)
	j.AssignAgent(skill, tier)
	o.logger.Info("agent assigned",
		zap.String("job_id", j.ID),
		zap.String("skill", skill),
		zap.String("model", string(tier)),
	)
	t = job.Next(j, job.Success())
	if t.Kind != job.TransitionNext {
		return nil, fmt.Errorf("unexpected transition %q from %s", t.Kind, job.StateDefineAgent)
	}

	// PROCESS: execute with retry support.
	if err := o.process(ctx, j); err != nil {
		recordJob(ctx, j)
		return nil, err
	}

	// END: produce the audit record.
	rec := job.NewRecord(j)
	recordJob(ctx, j)
	o.logger.Info("job completed",
		zap.String("job_id", j.ID),
		zap.Int("retries", rec.RetryCount),
		zap.Int64("duration_ms", rec.DurationMS),
	)
	return rec, nil
}

// resolveAgent picks the skill and model tier for a description. With a
// client configured it tries LLM classification first and falls back to
// keyword scoring on any error; the model override, when set, always
// wins over either path's tier but never the skill.
func (o *Orchestrator) resolveAgent(ctx context.Context, description string) (string, job.ModelTier) {
	if o.client != nil {
		skill, tier, err := router.ClassifyWithLLM(ctx, o.client, description)
		if err == nil {
			if o.modelOverride != "" {
				tier = o.modelOverride
			}
			return skill, tier
		}
		o.logger.Debug("LLM classification failed, falling back to keywords", zap.Error(err))
	}

	skill := router.RouteSkill(description)
	tier := o.modelOverride
	if tier == "" {
		tier = router.SelectModel(description)
	}
	return skill, tier
}

// process runs the PROCESS phase until the state machine either advances
// the job to END or reports terminal failure.
func (o *Orchestrator) process(ctx context.Context, j *job.Job) error {
	for {
		outcome := o.executeAttempt(ctx, j)
		t := job.Next(j, outcome)

		switch t.Kind {
		case job.TransitionNext:
			return nil // advanced to END
		case job.TransitionRetry:
			delay := j.RetryConfig.DelayForAttempt(j.RetryCount)
			o.logger.Warn("retrying job stage",
				zap.String("job_id", j.ID),
				zap.Int("attempt", j.RetryCount),
				zap.Int("max_retries", j.RetryConfig.MaxRetries),
				zap.String("reason", t.Reason.String()),
				zap.Duration("delay", delay),
			)
			recordRetry(ctx, j)
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		case job.TransitionComplete:
			if t.Outcome.OK() {
				return nil // defensive: only reachable at END
			}
			return fmt.Errorf("%w: job failed after %d retries: %s",
				ErrRetriesExhausted, j.RetryCount, t.Outcome.Failure)
		}
	}
}

// executeAttempt performs a single PROCESS attempt. Without a client the
// attempt is an unconditional simulated success.
func (o *Orchestrator) executeAttempt(ctx context.Context, j *job.Job) job.Outcome {
	if o.client == nil {
		return job.Success() // stub mode
	}
	if j.Agent == nil {
		return job.Fail(job.SystemFailure("no agent assigned"))
	}

	req := &anthropic.MessagesRequest{
		Model:     j.Agent.Model.APIModel(),
		MaxTokens: 4096,
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: processPromptPrefix + j.Description,
		}},
	}

	_, err := o.client.SendMessage(ctx, req)
	if err == nil {
		return job.Success()
	}

	var rateLimited *anthropic.RateLimitError
	if errors.As(err, &rateLimited) {
		return job.Fail(job.SystemFailure("Rate limited"))
	}
	return job.Fail(job.SystemFailure(err.Error()))
}

// sleep waits for the backoff delay without blocking other jobs, and
// returns early if the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
