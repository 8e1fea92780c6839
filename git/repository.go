package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/grovetools/promptline/logging"
	"github.com/sirupsen/logrus"
)

// Inspector implements StateInspector on top of go-git.
type Inspector struct {
	logger *logrus.Entry
}

// Ensure it implements the interface
var _ StateInspector = (*Inspector)(nil)

// NewInspector creates a new go-git backed inspector
func NewInspector() *Inspector {
	return &Inspector{
		logger: logging.NewLogger("git"),
	}
}

// Inspect walks up from cwd to the enclosing repository and reads HEAD and the
// operation in progress. It returns nil outside a repository and whenever HEAD
// cannot be resolved (e.g. a freshly initialized repository).
func (i *Inspector) Inspect(cwd string) *RepoStatus {
	repo, err := gogit.PlainOpenWithOptions(cwd, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if !errors.Is(err, gogit.ErrRepositoryNotExists) {
			i.logger.WithError(err).WithField("dir", cwd).Debug("Repository discovery failed")
		}
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		i.logger.WithError(err).WithField("dir", cwd).Debug("HEAD not resolvable")
		return nil
	}

	status := &RepoStatus{
		Reference: referenceName(head),
		State:     StateClean,
	}
	if storage, ok := repo.Storer.(*filesystem.Storage); ok {
		status.State = DetectState(storage.Filesystem())
	}

	i.logger.WithFields(logrus.Fields{
		"reference": status.Reference,
		"state":     status.State.String(),
	}).Debug("Inspected repository")

	return status
}

func referenceName(head *plumbing.Reference) string {
	if head.Name() == plumbing.HEAD {
		return MissingRef
	}
	if short := head.Name().Short(); short != "" {
		return short
	}
	return MissingRef
}
