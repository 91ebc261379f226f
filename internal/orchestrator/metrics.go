package orchestrator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fyrsmithlabs/jobd/internal/job"
)

const instrumentationName = "github.com/fyrsmithlabs/jobd/internal/orchestrator"

// Metrics for job execution
var (
	jobCounter   metric.Int64Counter
	jobDuration  metric.Float64Histogram
	retryCounter metric.Int64Counter
	costCounter  metric.Float64Counter
)

// initMetrics initializes OpenTelemetry metrics for the orchestrator.
// This is called once during package initialization.
func initMetrics() {
	meter := otel.Meter(instrumentationName)

	var err error

	// Job completion counter
	jobCounter, err = meter.Int64Counter(
		"jobd.orchestrator.jobs",
		metric.WithDescription("Total number of jobs run to a terminal status"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create job counter: %v", err))
	}

	// Job duration histogram
	jobDuration, err = meter.Float64Histogram(
		"jobd.orchestrator.job.duration",
		metric.WithDescription("Wall-clock duration of job executions"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create job duration histogram: %v", err))
	}

	// Retry counter
	retryCounter, err = meter.Int64Counter(
		"jobd.orchestrator.retries",
		metric.WithDescription("Number of PROCESS attempt retries"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create retry counter: %v", err))
	}

	// Estimated cost counter
	costCounter, err = meter.Float64Counter(
		"jobd.orchestrator.cost",
		metric.WithDescription("Estimated cumulative cost of executed jobs"),
		metric.WithUnit("{usd}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create cost counter: %v", err))
	}
}

func init() {
	initMetrics()
}

// recordJob records the terminal metrics for a job.
func recordJob(ctx context.Context, j *job.Job) {
	attrs := metric.WithAttributes(
		attribute.String("status", string(j.Status)),
		attribute.String("skill", jobSkill(j)),
	)
	jobCounter.Add(ctx, 1, attrs)
	jobDuration.Record(ctx, time.Since(j.CreatedAt).Seconds(), attrs)
	costCounter.Add(ctx, j.EstimatedCostUSD(), attrs)
}

// recordRetry records a single retry of the PROCESS phase.
func recordRetry(ctx context.Context, j *job.Job) {
	retryCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("skill", jobSkill(j)),
	))
}

func jobSkill(j *job.Job) string {
	if j.Agent == nil {
		return "unassigned"
	}
	return j.Agent.Skill
}
