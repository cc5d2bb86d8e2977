package bootstrap

import (
	"context"
	"fmt"

	"github.com/sandevgo/ragstart/pkg/log"
)

// Handoff runs the service in the foreground until it exits. The child runs
// inside the backend directory and shares the terminal. Cancelling ctx
// (operator interrupt) stops the child and counts as a clean shutdown.
func (b *Bootstrapper) Handoff(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	cmd := Command{
		Name: b.cfg.GetPython(),
		Args: []string{b.cfg.GetServiceEntry()},
		Dir:  b.cfg.GetBackendPath(),
	}

	b.status.Step("🚀", "Starting RAG PDF service...")
	logger.Info().Str("dir", cmd.Dir).Str("entry", b.cfg.GetServiceEntry()).Msg("handing off to service")

	err := b.runner.Run(ctx, cmd)
	if ctx.Err() != nil {
		b.status.Plain("")
		b.status.Step("👋", "RAG service stopped")
		logger.Debug().AnErr("exit", err).Msg("service interrupted")
		return nil
	}
	if err != nil {
		b.status.Fail("Failed to start service: %v", err)
		return fmt.Errorf("%w: %w", ErrServiceLaunch, err)
	}

	logger.Info().Msg("service exited")
	return nil
}
