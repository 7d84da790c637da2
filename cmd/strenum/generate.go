package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/strenum/compiler"
)

var generateFlags genFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the enums of a schema file",
	Long: `Generate one Go file per enum declared in the schema file.

Features listed in the schema file are enabled; --feature adds more.

Examples:
  strenum generate -f enums.yaml
  strenum generate -f enums.yaml -o ./sample --feature yaml,msgpack`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateFlags.register(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	g, err := compiler.LoadGraph(generateFlags.schema, generateFlags.options(cmd)...)
	if err != nil {
		return err
	}
	if err := g.Gen(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d enums in %s\n", len(g.Nodes), g.Target)
	return nil
}
