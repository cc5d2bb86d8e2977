package main

import (
	"fmt"

	"github.com/sandevgo/ragstart/internal/service/prompter"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask the operator for the next instruction",
	Long: `Reads lines until a non-empty instruction or 'stop' is entered.
The conversation goes to stderr; the accepted instruction is printed on
stdout so scripts can capture it.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		p := prompter.New(cmd.InOrStdin(), cmd.ErrOrStderr())
		instruction, ok, err := p.Run(ctx)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), instruction)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
