package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/jobd/internal/job"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in state machine demonstration",
	Long: `Walk an example job through every lifecycle state
(INIT -> DEFINE_AGENT -> PROCESS -> END), printing each transition and
the final audit record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func runDemo(out io.Writer) error {
	j := job.New("Example: implement hero section layout", job.DefaultRetryConfig())

	fmt.Fprintln(out, "jobd — Job State Machine Demo")
	fmt.Fprintf(out, "Job: %s (%s)\n", j.Description, j.ID)
	fmt.Fprintf(out, "State: %s\n\n", j.State)

	job.Next(j, job.Success())
	fmt.Fprintf(out, "  → Transitioned to %s\n", j.State)

	// Simulate agent assignment during the DEFINE_AGENT phase.
	j.AssignAgent("code_generation", job.TierSonnet)
	fmt.Fprintf(out, "  ✦ Assigned agent: skill=%s, model=%s, est. cost=$%.3f\n",
		j.Agent.Skill, j.Agent.Model, j.EstimatedCostUSD())

	for i := 0; i < 2; i++ {
		t := job.Next(j, job.Success())
		switch t.Kind {
		case job.TransitionNext:
			fmt.Fprintf(out, "  → Transitioned to %s\n", t.State)
		case job.TransitionRetry:
			fmt.Fprintf(out, "  ↻ Retrying %s (attempt %d/%d): %s\n",
				t.State, j.RetryCount, j.RetryConfig.MaxRetries, t.Reason)
		case job.TransitionComplete:
			fmt.Fprintf(out, "  ■ Completed: %s\n", t.Outcome)
		}
	}

	record := job.NewRecord(j)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAudit Record:\n%s\n", data)
	return nil
}
