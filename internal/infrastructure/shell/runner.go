// Package shell runs local collaborator tools (gh, gcloud, dig, curl).
// Output is returned as trimmed text; callers do line-splitting and
// substring checks only.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
)

type Runner interface {
	LookPath(name string) bool
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

func New() Runner {
	return &execRunner{}
}

func (r *execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, domain.DefaultRequestTimeout)
	defer cancel()

	logger.Debug("running command", "name", name, "args", args)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		logger.Debug("command failed", "name", name, "error", err)
		return strings.TrimSpace(string(out)), err
	}
	return strings.TrimSpace(string(out)), nil
}
