package main

import (
	"errors"

	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/internal/service/envfile"
	"github.com/sandevgo/ragstart/internal/service/ui"
	"github.com/sandevgo/ragstart/pkg/log"
	"github.com/spf13/cobra"
)

var interactive bool

var setupEnvCmd = &cobra.Command{
	Use:   "setup-env",
	Short: "Create backend/.env from env.example or a default template",
	Long: `Creates backend/.env if it does not exist, copying backend/env.example when
present. An existing .env is never overwritten. With --interactive the API key
is asked for and stored in the file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		status := ui.NewStatus(cmd.OutOrStdout())

		cfg, err := config.ParseBootstrapConfig()
		if err != nil {
			return err
		}

		status.Header("🔧 Setting up environment file")

		res, err := envfile.Setup(ctx, cfg)
		if errors.Is(err, envfile.ErrBackendNotFound) {
			status.Fail("Backend directory not found!")
			status.Plain("Please run this command from the project root directory.")
			return err
		}
		if res != nil {
			reportOutcome(status, res)
		}
		if err != nil {
			status.Fail("Failed to set up .env file: %v", err)
			return err
		}

		if interactive {
			key, err := envfile.PromptKey()
			if err != nil {
				return err
			}
			if key != "" {
				if err := envfile.SetKey(res.Path, key); err != nil {
					return err
				}
				res.KeyConfigured = true
				logger.Info().Str("path", res.Path).Msg("stored API key")
			}
		}

		if res.KeyConfigured {
			status.Ok("%s appears to be configured", envfile.APIKeyVar)
		} else {
			status.Warn("Please make sure to add your actual OpenAI API key to:")
			status.Plain("   %s=your_actual_api_key_here", envfile.APIKeyVar)
		}

		status.Plain("")
		status.Step("🚀", "Next steps:")
		status.Plain("1. Edit %s and add your OpenAI API key", res.Path)
		status.Plain("2. Run: ragstart start")
		return nil
	},
}

func reportOutcome(status *ui.Status, res *envfile.Result) {
	switch res.Outcome {
	case envfile.Existing:
		status.Ok(".env file already exists in backend directory")
	case envfile.CopiedExample:
		status.Ok("Created .env file from template")
	case envfile.CreatedDefault:
		status.Ok("Created .env file")
	}
	status.Step("📍", "Location: %s", res.Path)
}

func init() {
	setupEnvCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask for the API key and store it")
	rootCmd.AddCommand(setupEnvCmd)
}
