package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/strenum/compiler/load"
)

// Graph holds the enums of one generated package.
type Graph struct {
	*Config
	// Nodes are the enum types, in schema order.
	Nodes []*Type
	// Schemas holds the raw schemas the graph was built from.
	Schemas []*load.Schema
}

// NewGraph creates a new graph for the given schemas. All schema errors
// are collected and returned joined.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	g := &Graph{Config: c, Schemas: schemas}
	var (
		errs  []error
		names = make(map[string]string)
	)
	for _, s := range schemas {
		t, err := NewType(c, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		// Every generated file shares the package scope.
		for _, id := range t.Identifiers() {
			if owner, ok := names[id]; ok {
				errs = append(errs, schemaErr(s, "", fmt.Sprintf("identifier %s collides with a declaration of enum %s", id, owner), nil))
				continue
			}
			names[id] = t.Name
		}
		g.Nodes = append(g.Nodes, t)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// Gen generates the artifacts for the graph using the configured
// generator, wrapped by the configured hooks.
func (g *Graph) Gen(ctx context.Context) error {
	if g.Generator == nil {
		return NewConfigError("Generator", nil, "no generator configured")
	}
	var gen Generator = g.Generator
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(ctx, g)
}

// Snapshot returns the msgpack snapshot of the graph schemas.
func (g *Graph) Snapshot() ([]byte, error) {
	return load.MarshalSchema(g.Schemas...)
}

// Type returns the enum type with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
