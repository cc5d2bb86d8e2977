package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/ragstart/pkg/log"
)

// ProvisionDirectories creates each work directory with its parents.
// Directories that already exist are left alone, so reruns are safe.
func (b *Bootstrapper) ProvisionDirectories(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	for _, dir := range b.cfg.GetWorkDirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.status.Fail("Failed to create %s: %v", dir, err)
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
		logger.Debug().Str("path", dir).Msg("directory ready")
	}

	b.status.Ok("Created necessary directories")
	return nil
}
