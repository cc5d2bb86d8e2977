package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sandevgo/ragstart/pkg/log"
)

// InstallDependencies runs pip against the manifest. The manifest is checked
// first, so a missing one never spawns the installer.
func (b *Bootstrapper) InstallDependencies(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	manifest := b.cfg.GetManifestPath()

	b.status.Step("📦", "Installing Python dependencies...")

	info, err := os.Stat(manifest)
	if err != nil || info.IsDir() {
		b.status.Fail("%s not found", manifest)
		if err == nil {
			err = errors.New("is a directory")
		}
		return fmt.Errorf("%w: %s: %w", ErrManifestNotFound, manifest, err)
	}

	cmd := Command{
		Name: b.cfg.GetPython(),
		Args: []string{"-m", "pip", "install", "-r", manifest},
	}
	logger.Debug().Str("cmd", cmd.Name).Strs("args", cmd.Args).Msg("running installer")

	if err := b.runner.Run(ctx, cmd); err != nil {
		if ctx.Err() != nil {
			b.status.Fail("Dependency installation interrupted")
			return fmt.Errorf("%w: %w", ErrDependencyInstall, ctx.Err())
		}
		if code, ok := ExitCode(err); ok {
			b.status.Fail("Failed to install dependencies: installer exited with status %d", code)
		} else {
			b.status.Fail("Failed to install dependencies: %v", err)
		}
		return fmt.Errorf("%w: %w", ErrDependencyInstall, err)
	}

	b.status.Ok("Dependencies installed successfully")
	return nil
}
