// Package ui renders job progress and results to the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/todo"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	retryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))
)

// Progress prints a job's lifecycle as it runs.
type Progress struct {
	out io.Writer
}

// NewProgress creates a Progress writing to out; nil means stdout.
func NewProgress(out io.Writer) *Progress {
	if out == nil {
		out = os.Stdout
	}
	return &Progress{out: out}
}

// Start announces the job before the state machine begins.
func (p *Progress) Start(description string) {
	fmt.Fprintf(p.out, "%s %s\n", stateStyle.Render("INIT:"), description)
}

// StateChange reports a lifecycle state transition.
func (p *Progress) StateChange(state job.State) {
	fmt.Fprintf(p.out, "  %s\n", stateStyle.Render(string(state)))
}

// Retry reports a retry attempt with its reason.
func (p *Progress) Retry(attempt, max int, reason string) {
	fmt.Fprintf(p.out, "  %s Retry %d/%d: %s\n", retryStyle.Render("↻"), attempt, max, reason)
}

// Complete reports the terminal outcome of the job.
func (p *Progress) Complete(outcome job.Outcome) {
	if outcome.OK() {
		fmt.Fprintf(p.out, "  %s Job completed successfully\n", successStyle.Render("✓"))
		return
	}
	fmt.Fprintf(p.out, "  %s Job failed: %s\n", failureStyle.Render("✗"), outcome.Failure)
}

// PrintFooter prints a compact cost/time/repo summary for a finished job.
func (p *Progress) PrintFooter(rec *job.Record, repoLines int64) {
	durationMS := rec.DurationMS
	if durationMS < 0 {
		durationMS = 0
	}
	var timeStr string
	switch {
	case durationMS < 1_000:
		timeStr = fmt.Sprintf("%dms", durationMS)
	case durationMS < 60_000:
		timeStr = fmt.Sprintf("%.1fs", float64(durationMS)/1_000)
	default:
		timeStr = fmt.Sprintf("%dm %ds", durationMS/60_000, (durationMS%60_000)/1_000)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, ruleStyle.Render("─── Summary ─────────────────────────────────"))
	fmt.Fprintf(p.out, "  %s  $%.4f\n", labelStyle.Render("Cost :"), rec.CostUSD)
	fmt.Fprintf(p.out, "  %s  %s\n", labelStyle.Render("Time :"), timeStr)
	fmt.Fprintf(p.out, "  %s  %d lines\n", labelStyle.Render("Repo :"), repoLines)
	fmt.Fprintln(p.out, ruleStyle.Render("─────────────────────────────────────────────"))
}

// PrintAudit prints the audit record as indented JSON under a colored
// header reflecting the final status.
func (p *Progress) PrintAudit(rec *job.Record) {
	header := retryStyle
	switch rec.Status {
	case job.StatusCompleted:
		header = successStyle
	case job.StatusFailed:
		header = failureStyle
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, header.Render("─── Audit Record ───"))
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(p.out, string(data))
}

// PrintTodos prints a numbered TODO list with priorities and skills.
func (p *Progress) PrintTodos(items []todo.Item) {
	for _, item := range items {
		line := fmt.Sprintf("  %d. [%s] %s", item.ID, item.Priority, item.Title)
		if item.Skill != "" {
			line += " " + stateStyle.Render("("+item.Skill+")")
		}
		fmt.Fprintln(p.out, line)
	}
}

// CountRepoLines totals the lines of all .go files under dir, skipping
// hidden directories and vendor trees.
func CountRepoLines(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		total += int64(strings.Count(string(data), "\n"))
		return nil
	})
	return total
}
