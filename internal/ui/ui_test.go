package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/todo"
)

func finishedRecord(t *testing.T, status job.Status) *job.Record {
	t.Helper()
	j := job.New("Fix the login bug", job.DefaultRetryConfig())
	j.AssignAgent("bug_fix", job.TierSonnet)
	j.Status = status
	j.State = job.StateEnd
	return job.NewRecord(j)
}

func TestProgressComplete(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)

	p.Complete(job.Success())
	assert.Contains(t, buf.String(), "Job completed successfully")

	buf.Reset()
	p.Complete(job.Fail(job.SystemFailure("timeout")))
	assert.Contains(t, buf.String(), "Job failed")
	assert.Contains(t, buf.String(), "System failure: timeout")
}

func TestProgressRetry(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(&buf).Retry(2, 3, "Rate limited")
	assert.Contains(t, buf.String(), "Retry 2/3: Rate limited")
}

func TestPrintFooterFormatsDuration(t *testing.T) {
	cases := []struct {
		durationMS int64
		want       string
	}{
		{250, "250ms"},
		{1500, "1.5s"},
		{125_000, "2m 5s"},
		{-50, "0ms"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		rec := finishedRecord(t, job.StatusCompleted)
		rec.DurationMS = tc.durationMS
		NewProgress(&buf).PrintFooter(rec, 1234)
		assert.Contains(t, buf.String(), tc.want)
		assert.Contains(t, buf.String(), "1234 lines")
	}
}

func TestPrintAuditIncludesRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(&buf).PrintAudit(finishedRecord(t, job.StatusCompleted))

	out := buf.String()
	assert.Contains(t, out, "Audit Record")
	assert.Contains(t, out, `"status": "completed"`)
	assert.Contains(t, out, `"description": "Fix the login bug"`)
}

func TestPrintTodos(t *testing.T) {
	var buf bytes.Buffer
	NewProgress(&buf).PrintTodos([]todo.Item{
		{ID: 1, Title: "Write tests", Priority: todo.PriorityHigh, Skill: "testing"},
		{ID: 2, Title: "Do something", Priority: todo.PriorityMedium},
	})

	out := buf.String()
	assert.Contains(t, out, "1. [high] Write tests")
	assert.Contains(t, out, "(testing)")
	assert.Contains(t, out, "2. [medium] Do something")
}

func TestCountRepoLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n\nvar X = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden", "b.go"), []byte("package b\n"), 0o644))

	assert.Equal(t, int64(3), CountRepoLines(dir))
}
