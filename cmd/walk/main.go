package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

var walkFlags struct {
	format string
}

var rootCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk through the project wizard in the terminal",
	Long: `walk asks the same questions as the web wizard, one step at a time:
project name, language/runtime and features, then prints a summary.

Answers are read line by line from stdin, so the flow can be scripted:

  printf 'Demo\nPython\nForm handling,Templating\n' | walk --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return walk(cmd.InOrStdin(), cmd.ErrOrStderr(), cmd.OutOrStdout(), walkFlags.format)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&walkFlags.format, "format", "f", formatText, "Summary output format: text, yaml or json")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
