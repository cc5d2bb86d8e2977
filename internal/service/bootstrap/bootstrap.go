package bootstrap

import (
	"context"
	"io"
	"os"

	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/internal/core"
	"github.com/sandevgo/ragstart/internal/service/ui"
	"github.com/sandevgo/ragstart/pkg/log"
)

// Bootstrapper prepares the backend and hands the terminal to the RAG
// service. Steps run strictly in order and the first failure aborts the run:
//
//  1. interpreter version check
//  2. required environment variables
//  3. dependency install
//  4. work directories
//  5. service handoff
//
// Nothing is retried.
type Bootstrapper struct {
	cfg     core.BootstrapConfig
	runner  Runner
	status  *ui.Status
	environ func() []string
}

func New(cfg core.BootstrapConfig, runner Runner, out io.Writer) *Bootstrapper {
	return &Bootstrapper{
		cfg:     cfg,
		runner:  runner,
		status:  ui.NewStatus(out),
		environ: os.Environ,
	}
}

// WithEnviron replaces the environment source used for validation.
func (b *Bootstrapper) WithEnviron(fn func() []string) *Bootstrapper {
	b.environ = fn
	return b
}

func (b *Bootstrapper) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	b.status.Header("🔧 RAG PDF Service Startup")

	if _, err := b.CheckRuntime(ctx); err != nil {
		return err
	}

	if err := b.ValidateEnvironment(ctx, &config.OpenAIConfig{}); err != nil {
		return err
	}

	if b.cfg.ShouldInstall() {
		if err := b.InstallDependencies(ctx); err != nil {
			return err
		}
	} else {
		logger.Info().Msg("skipping dependency installation")
	}

	if err := b.ProvisionDirectories(ctx); err != nil {
		return err
	}

	return b.Handoff(ctx)
}
