package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/strenum/compiler/gen"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strenum",
	Short: "Generate string-backed Go enums from schema files",
	Long: `strenum generates closed, string-backed enumerations.

Every enum declared in a YAML or JSON schema file becomes one Go file with
a value table, lookup and parse functions, and opt-in adapters for text,
JSON, YAML, msgpack, SQL and GraphQL.

  strenum generate -f enums.yaml -o ./sample
  strenum check -f enums.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation progress")
}

// logger returns the logger for a command run, writing to its error
// stream.
func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// genFlags holds the flags shared by generate and watch.
type genFlags struct {
	schema   string
	target   string
	pkg      string
	header   string
	features []string
	workers  int
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schema, "file", "f", "", "schema file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&f.target, "out", "o", "", "output directory (default: directory of the schema file)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "generated package name (default: from the schema file)")
	cmd.Flags().StringVar(&f.header, "header", "", "header comment of generated files")
	cmd.Flags().StringSliceVar(&f.features, "feature", nil, "additional features to enable, e.g. yaml,msgpack")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "files rendered in parallel (default: GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("file")
}

// options returns the generator options described by the flags.
func (f *genFlags) options(cmd *cobra.Command) []gen.Option {
	opts := []gen.Option{
		gen.WithLogger(logger(cmd)),
		gen.WithWorkers(f.workers),
	}
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if f.pkg != "" {
		opts = append(opts, gen.WithPackage(f.pkg))
	}
	if f.header != "" {
		opts = append(opts, gen.WithHeader(f.header))
	}
	if len(f.features) > 0 {
		opts = append(opts, gen.WithFeatureNames(f.features...))
	}
	return opts
}
