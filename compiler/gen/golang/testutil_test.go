package golang

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strenum/compiler/gen"
	"github.com/syssam/strenum/compiler/load"
)

// mockHelper implements gen.GeneratorHelper with configurable features.
type mockHelper struct {
	graph    *gen.Graph
	features map[string]bool
}

func newMockHelper(features ...string) *mockHelper {
	m := &mockHelper{
		graph:    &gen.Graph{Config: &gen.Config{Package: "sample", Target: "/tmp/sample"}},
		features: make(map[string]bool),
	}
	for _, f := range features {
		m.features[f] = true
	}
	return m
}

func (m *mockHelper) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(gen.DefaultHeader)
	f.ImportName(gen.RuntimePkg, "strenum")
	return f
}

func (m *mockHelper) Graph() *gen.Graph               { return m.graph }
func (m *mockHelper) Pkg() string                     { return "sample" }
func (m *mockHelper) RuntimePkg() string              { return gen.RuntimePkg }
func (m *mockHelper) FeatureEnabled(name string) bool { return m.features[name] }
func (m *mockHelper) Logger() *slog.Logger            { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

var _ gen.GeneratorHelper = (*mockHelper)(nil)

func ptr[T any](v T) *T { return &v }

// myEnum is the two-variant enum used throughout the dialect tests.
func myEnum() *load.Schema {
	return &load.Schema{
		Name:      "MyEnum",
		ErrorType: "MyError",
		Derive:    []string{"eq", "ord", "debug"},
		Variants: []*load.Variant{
			{Name: "Variant1", Value: "Variant1", Aliases: []string{"variant1"}},
			{Name: "Variant2", Value: "Variant2"},
		},
	}
}

// level is a sparse enum with a signed representation.
func level() *load.Schema {
	return &load.Schema{
		Name:   "Level",
		Repr:   "int8",
		Prefix: ptr("Level"),
		Variants: []*load.Variant{
			{Name: "Debug", Value: "debug", Discriminant: ptr(int64(-4))},
			{Name: "Info", Value: "info"},
			{Name: "Warn", Value: "warn", Discriminant: ptr(int64(4))},
		},
	}
}

func createTestType(t *testing.T, s *load.Schema) *gen.Type {
	t.Helper()
	typ, err := gen.NewType(&gen.Config{}, s)
	require.NoError(t, err)
	return typ
}
