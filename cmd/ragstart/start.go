package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/internal/service/bootstrap"
	"github.com/sandevgo/ragstart/pkg/log"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Prepare the backend and start the RAG service",
	Long: `Checks the Python version and required environment variables, installs
backend/requirements.txt, creates the upload and vector store directories,
then runs the RAG service in the foreground until it exits or is interrupted.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	// Bootstrapper already explained the failure to the operator
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Interrupts must reach the bootstrapper, not kill it, so the
		// service handoff can end cleanly.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cfg, err := config.ParseBootstrapConfig()
		if err != nil {
			logger.Error().Err(err).Msg("failed to parse Bootstrap config")
			return err
		}

		b := bootstrap.New(cfg, bootstrap.NewExecRunner(), cmd.OutOrStdout())
		if err := b.Run(ctx); err != nil {
			logger.Debug().Err(err).Msg("bootstrap failed")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
