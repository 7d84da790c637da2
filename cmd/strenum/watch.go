package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/strenum/compiler"
)

var watchFlags genFlags

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the enums whenever the schema file changes",
	Long: `Generate the enums of the schema file, then regenerate them on every
change until interrupted.

Examples:
  strenum watch -f enums.yaml -o ./sample -v`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchFlags.register(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return compiler.Watch(ctx, watchFlags.schema, watchFlags.options(cmd)...)
}
