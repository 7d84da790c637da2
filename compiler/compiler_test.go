package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strenum/compiler/gen"
)

func TestLoadGraph(t *testing.T) {
	g, err := LoadGraph("testdata/enums.yaml")
	require.NoError(t, err)

	assert.Equal(t, "sample", g.Package)
	abs, err := filepath.Abs("testdata")
	require.NoError(t, err)
	assert.Equal(t, abs, g.Target)
	assert.Equal(t, []gen.Feature{gen.FeatureJSON}, g.Features)
	assert.NotNil(t, g.Generator)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "MyEnum", g.Nodes[0].Name)
	assert.Equal(t, "Level", g.Nodes[1].Name)
}

func TestLoadGraphOptions(t *testing.T) {
	target := t.TempDir()
	g, err := LoadGraph("testdata/enums.yaml",
		gen.WithTarget(target),
		gen.WithPackage("enums"),
		gen.WithFeatureNames("yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, target, g.Target)
	assert.Equal(t, "enums", g.Package)
	assert.Equal(t, []gen.Feature{gen.FeatureJSON, gen.FeatureYAML}, g.Features)
}

func TestLoadGraphDefaultFeatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"package":"sample","enums":[{"name":"Color","variants":[{"name":"Red","value":"red"}]}]}`), 0o644))

	g, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, gen.DefaultFeatures(), g.Features)
}

func TestLoadGraphErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGraph("testdata/missing.yaml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("duplicate value", func(t *testing.T) {
		_, err := LoadGraph("testdata/duplicate.yaml")
		assert.True(t, gen.IsSchemaError(err))
		assert.ErrorIs(t, err, gen.ErrInvalidSchema)
		assert.Contains(t, err.Error(), "duplicate.yaml")
	})
	t.Run("shadowed identifiers", func(t *testing.T) {
		_, err := LoadGraph("testdata/shadow.yaml")
		assert.True(t, gen.IsSchemaError(err))
		assert.Contains(t, err.Error(), `constant name "v" shadows`)
		assert.Contains(t, err.Error(), `constant name "strconv" shadows`)

		target := t.TempDir()
		require.Error(t, Generate(context.Background(), "testdata/shadow.yaml", gen.WithTarget(target)))
		entries, err := os.ReadDir(target)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
	t.Run("unknown feature", func(t *testing.T) {
		_, err := LoadGraph("testdata/feature.yaml")
		assert.True(t, gen.IsConfigError(err))
		assert.Contains(t, err.Error(), "protobuf")
	})
	t.Run("bad option", func(t *testing.T) {
		_, err := LoadGraph("testdata/enums.yaml", gen.WithWorkers(-1))
		assert.True(t, gen.IsConfigError(err))
	})
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, Generate(context.Background(), "testdata/enums.yaml", gen.WithTarget(target)))

	buf, err := os.ReadFile(filepath.Join(target, "my_enum.go"))
	require.NoError(t, err)
	code := string(buf)
	assert.Contains(t, code, "package sample")
	assert.Contains(t, code, "func (v MyEnum) MarshalJSON() ([]byte, error) {")
	assert.NotContains(t, code, "MarshalYAML")
	assert.Contains(t, code, "func ParseMyEnum(s string) (MyEnum, error) {")

	buf, err = os.ReadFile(filepath.Join(target, "level.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "type Level int8")
}

func TestGenerateHooks(t *testing.T) {
	var names []string
	hook := func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
			for _, n := range g.Nodes {
				names = append(names, n.Name)
			}
			return next.Generate(ctx, g)
		})
	}
	stub := gen.GenerateFunc(func(context.Context, *gen.Graph) error { return nil })
	err := Generate(context.Background(), "testdata/enums.yaml", gen.WithHooks(hook), gen.WithGenerator(stub))
	require.NoError(t, err)
	assert.Equal(t, []string{"MyEnum", "Level"}, names)
}

func TestGenerateSampleUpToDate(t *testing.T) {
	const dir = "../internal/sample"
	target := t.TempDir()
	require.NoError(t, Generate(context.Background(), filepath.Join(dir, "enums.yaml"), gen.WithTarget(target)))

	for _, name := range []string{"my_enum.go", "level.go"} {
		want, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(target, name))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "%s is stale, run go generate ./internal/sample", name)
	}
}
