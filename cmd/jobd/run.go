package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/jobd/internal/git"
	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/orchestrator"
	"github.com/fyrsmithlabs/jobd/internal/ui"
)

var jobFile string

var runCmd = &cobra.Command{
	Use:   "run [description]",
	Short: "Run a job with the given description",
	Long: `Run a job through the full lifecycle. The job comes from a free-text
description or from a JSON/TOML definition file.

Examples:
  jobd run "fix the login bug"
  jobd run --file job.json
  jobd --model haiku --max-retries 5 run "rename the User struct"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJob,
}

func init() {
	runCmd.Flags().StringVar(&jobFile, "file", "", "path to a JSON or TOML job definition")
}

func runJob(cmd *cobra.Command, args []string) error {
	j, err := buildJob(args)
	if err != nil {
		return err
	}

	override, err := modelOverride()
	if err != nil {
		return err
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if client := newClient(); client != nil {
		opts = append(opts, orchestrator.WithClient(client))
	}
	if override != "" {
		opts = append(opts, orchestrator.WithModelOverride(override))
	}
	orch := orchestrator.New(opts...)

	progress := ui.NewProgress(cmd.OutOrStdout())
	progress.Start(j.Description)

	logger.Debug("starting job",
		zap.String("job_id", j.ID),
		zap.String("model_override", string(override)),
		zap.Int("max_retries", j.RetryConfig.MaxRetries),
	)

	record, err := orch.Run(cmd.Context(), j)
	if err != nil {
		if errors.Is(err, orchestrator.ErrRetriesExhausted) {
			progress.Complete(job.Fail(job.SystemFailure(err.Error())))
		}
		return err
	}

	progress.Complete(job.Success())
	progress.PrintAudit(record)
	progress.PrintFooter(record, ui.CountRepoLines("."))

	commitResult(cmd.OutOrStdout(), j)
	return nil
}

// buildJob constructs the job from --file or the positional description.
func buildJob(args []string) (*job.Job, error) {
	if jobFile != "" {
		return job.LoadFile(jobFile)
	}
	if len(args) == 1 {
		return job.New(args[0], effectiveRetryConfig()), nil
	}
	return nil, errors.New("provide a job description or --file")
}

// commitResult records the finished job in the working repository when
// one is present. Failures are logged, never fatal.
func commitResult(out io.Writer, j *job.Job) {
	gm, err := git.Open(".")
	if err != nil {
		return
	}
	hash, err := gm.CommitJobResult(j)
	if err != nil {
		logger.Warn("failed to commit job result", zap.Error(err))
		return
	}
	fmt.Fprintln(out, "  Committed:", hash)
}
