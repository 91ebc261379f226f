// Package git commits job results and manages job branches in the
// repository the tool operates on.
package git

import (
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/fyrsmithlabs/jobd/internal/job"
)

// Files never staged, to avoid committing local secrets.
var excludedNames = []string{"jobd.yaml", ".env", ".env.local"}

const (
	fallbackAuthorName  = "jobd"
	fallbackAuthorEmail = "jobd@localhost"
)

// Manager wraps a repository for job-related git operations.
type Manager struct {
	repo *gogit.Repository
}

// Open opens an existing repository at path.
func Open(path string) (*Manager, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &Manager{repo: repo}, nil
}

// Commit stages all changes except excluded files and commits them,
// returning the short hash. The author comes from the repository config
// when available.
func (m *Manager) Commit(message string) (string, error) {
	wt, err := m.repo.Worktree()
	if err != nil {
		return "", err
	}

	status, err := wt.Status()
	if err != nil {
		return "", err
	}
	for path := range status {
		if isExcluded(path) {
			continue
		}
		if _, err := wt.Add(path); err != nil {
			return "", fmt.Errorf("failed to stage %s: %w", path, err)
		}
	}

	opts := &gogit.CommitOptions{}
	if err := opts.Validate(m.repo); err != nil {
		opts.Author = &object.Signature{
			Name:  fallbackAuthorName,
			Email: fallbackAuthorEmail,
			When:  time.Now(),
		}
	}

	hash, err := wt.Commit(message, opts)
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String()[:7], nil
}

// CommitJobResult records a job's outcome as a commit, returning the
// short hash. Message format: "jobd: [skill] description (status)".
func (m *Manager) CommitJobResult(j *job.Job) (string, error) {
	skill := "unknown"
	if j.Agent != nil {
		skill = j.Agent.Skill
	}
	message := fmt.Sprintf("jobd: [%s] %s (%s)", skill, j.Description, j.Status)
	return m.Commit(message)
}

// CreateBranch creates a branch off HEAD and checks it out.
func (m *Manager) CreateBranch(name string) error {
	wt, err := m.repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// CreateJobBranch creates and checks out a branch named
// "jobd/<first 8 chars of the job ID>".
func (m *Manager) CreateJobBranch(j *job.Job) error {
	shortID := j.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return m.CreateBranch("jobd/" + shortID)
}

// CurrentBranch returns the name of the branch HEAD points to.
func (m *Manager) CurrentBranch() (string, error) {
	head, err := m.repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch: %s", head.Name())
	}
	return head.Name().Short(), nil
}

func isExcluded(path string) bool {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	for _, excluded := range excludedNames {
		if name == excluded {
			return true
		}
	}
	return strings.HasSuffix(name, ".key")
}
