package gen

import (
	"context"
	"log/slog"
	"slices"
)

type (
	// Config holds the global codegen configuration to be
	// shared between all generated enums.
	Config struct {
		// Package is the name of the generated Go package.
		// Defaults to the base name of Target.
		Package string

		// Target defines the filepath for the target directory that
		// holds the generated code.
		Target string

		// Header allows users to provide an optional header signature for
		// the generated files. It defaults to the standard 'go generate'
		// format: '// Code generated by strenum, DO NOT EDIT.'.
		Header string

		// Features defines a list of additional features to add to the codegen phase.
		// For example, the FeatureYAML adapter.
		Features []Feature

		// Workers limits the number of files rendered in parallel.
		// Zero means GOMAXPROCS.
		Workers int

		// Logger receives generation progress. Defaults to slog.Default().
		Logger *slog.Logger

		// Hooks holds an optional list of Hooks to apply on the graph before/after the code-generation.
		Hooks []Hook

		// Generator renders the graph. It is set by the golang package and
		// can be replaced for testing or custom output.
		Generator Generator
	}

	// OutputConfig groups the settings that control where and how files
	// are written.
	OutputConfig struct {
		Target  string
		Package string
		Header  string
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code for the given graph.
		Generate(context.Context, *Graph) error
	}

	// The GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate signature,
	// GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(context.Context, *Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(ctx, g)
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(ctx, g).
func (f GenerateFunc) Generate(ctx context.Context, g *Graph) error {
	return f(ctx, g)
}

// DefaultHeader is written at the top of generated files when Config.Header
// is empty.
const DefaultHeader = "Code generated by strenum, DO NOT EDIT."

// Output returns the output settings of the config.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the template engine as follows:
//
//	if enabled, _ := cfg.FeatureEnabled("yaml"); enabled {
//		...
//	}
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return f.Name == name
	}), nil
}

// SerialEnabled reports if any serialization adapter is enabled.
func (c *Config) SerialEnabled() bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return slices.ContainsFunc(serialFeatures, func(s Feature) bool {
			return s.Name == f.Name
		})
	})
}

// Log returns the configured logger.
func (c *Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// header returns the file header comment.
func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// DefaultConfig returns a config with the default header and the
// features enabled by default.
func DefaultConfig() *Config {
	return &Config{
		Header:   DefaultHeader,
		Features: DefaultFeatures(),
	}
}

// HasFeature reports if the feature with the given name is enabled.
// Unlike FeatureEnabled, unknown names report false.
func (c *Config) HasFeature(name string) bool {
	enabled, _ := c.FeatureEnabled(name)
	return enabled
}
