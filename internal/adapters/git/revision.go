// Package git provides the source revision adapter backed by the git CLI.
package git

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/whisk/internal/core/domain"
	"go.trai.ch/whisk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RevisionProvider = (*Provider)(nil)

// Provider implements ports.RevisionProvider using the git CLI.
type Provider struct{}

// NewProvider creates a new git-backed RevisionProvider.
func NewProvider() *Provider {
	return &Provider{}
}

// Revision returns the commit hash of HEAD for the checkout rooted at root.
func (p *Provider) Revision(ctx context.Context, root string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", root, "rev-parse", "HEAD")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			revErr := zerr.Wrap(exitErr, domain.ErrRevisionLookupFailed.Error())
			revErr = zerr.With(revErr, "root", root)
			return "", zerr.With(revErr, "stderr", stderr)
		}

		revErr := zerr.Wrap(err, domain.ErrRevisionLookupFailed.Error())
		return "", zerr.With(revErr, "root", root)
	}

	rev := strings.TrimSpace(string(output))
	if rev == "" {
		emptyErr := zerr.With(domain.ErrRevisionLookupFailed, "root", root)
		return "", zerr.With(emptyErr, "reason", "git rev-parse produced no output")
	}

	return rev, nil
}
