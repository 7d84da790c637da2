// Package compiler provides an API for generating enums from schema files.
//
//	err := compiler.Generate(ctx, "./enums.yaml", gen.WithTarget("./sample"))
//
// The schema file may enable features and name the output package; options
// given to Generate are applied after the file settings and override them.
package compiler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/syssam/strenum/compiler/gen"
	"github.com/syssam/strenum/compiler/gen/golang"
	"github.com/syssam/strenum/compiler/load"
)

// LoadGraph loads the schema file at path and returns the enum graph to
// be generated. The target defaults to the directory of the schema file.
func LoadGraph(path string, opts ...gen.Option) (*gen.Graph, error) {
	f, err := load.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := fileConfig(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	if cfg.Target == "" {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("compiler: resolve target: %w", err)
		}
		cfg.Target = dir
	}
	if cfg.Generator == nil {
		cfg.Generator = golang.Generator
	}
	return gen.NewGraph(cfg, f.Enums...)
}

// Generate loads the schema file at path and generates the enums it
// declares.
func Generate(ctx context.Context, path string, opts ...gen.Option) error {
	g, err := LoadGraph(path, opts...)
	if err != nil {
		return err
	}
	return g.Gen(ctx)
}

// fileConfig returns the config described by the schema file. Files that
// list no features get the default feature set.
func fileConfig(f *load.File) (*gen.Config, error) {
	cfg := gen.DefaultConfig()
	var opts []gen.Option
	if len(f.Features) > 0 {
		cfg.Features = nil
		opts = append(opts, gen.WithFeatureNames(f.Features...))
	}
	if f.Package != "" {
		opts = append(opts, gen.WithPackage(f.Package))
	}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, fmt.Errorf("compiler: %s: %w", f.Path, err)
	}
	return cfg, nil
}
