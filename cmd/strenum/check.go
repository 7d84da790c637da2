package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/strenum/compiler"
)

var checkSchema string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a schema file without generating code",
	Long: `Validate the schema file and print the value table of every enum.

Examples:
  strenum check -f enums.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkSchema, "file", "f", "", "schema file (.yaml, .yml or .json)")
	_ = checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	g, err := compiler.LoadGraph(checkSchema)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENUM\tTYPE\tVARIANTS\tVALUE TABLE")
	for _, t := range g.Nodes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.Name, t.Underlying(), t.NumVariants(), t.Table.Value)
	}
	return w.Flush()
}
