package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strenum/compiler/load"
)

// stubDialect renders a constant holding the value table of each enum.
type stubDialect struct {
	helper GeneratorHelper
}

func (d *stubDialect) Name() string { return "stub" }

func (d *stubDialect) GenEnum(t *Type) *jen.File {
	f := d.helper.NewFile(d.helper.Pkg())
	f.Const().Id(t.ValueTableName()).Op("=").Lit(t.Table.Value)
	return f
}

func newTestGraph(t *testing.T, cfg *Config) *Graph {
	t.Helper()
	g, err := NewGraph(cfg, myEnum(), &load.Schema{
		Name:     "Color",
		Variants: []*load.Variant{{Name: "Red", Value: "red"}, {Name: "Green", Value: "green"}},
	})
	require.NoError(t, err)
	return g
}

func TestJenniferGenerator(t *testing.T) {
	t.Run("requires a dialect", func(t *testing.T) {
		target := t.TempDir()
		gen := NewJenniferGenerator(newTestGraph(t, &Config{}), target)
		err := gen.Generate(context.Background())
		assert.True(t, IsConfigError(err))
	})

	t.Run("writes one file per enum", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "enums")
		var logs bytes.Buffer
		g := newTestGraph(t, &Config{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))})
		gen := NewJenniferGenerator(g, target).WithWorkers(2)
		gen.WithDialect(&stubDialect{helper: gen})
		require.NoError(t, gen.Generate(context.Background()))

		buf, err := os.ReadFile(filepath.Join(target, "my_enum.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), "// "+DefaultHeader)
		assert.Contains(t, string(buf), "package enums")
		assert.Contains(t, string(buf), `const MyEnumValueTable = "Variant1,Variant2"`)

		buf, err = os.ReadFile(filepath.Join(target, "color.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), `const ColorValueTable = "red,green"`)

		m := gen.Metrics()
		assert.Equal(t, 2, m.FilesWritten)
		assert.Positive(t, m.TotalBytes)
		assert.Contains(t, logs.String(), "generation finished")
		assert.Contains(t, logs.String(), "enum=Color")

		// A second run leaves the files untouched.
		gen2 := NewJenniferGenerator(g, target).WithPackage("enums")
		gen2.WithDialect(&stubDialect{helper: gen2})
		require.NoError(t, gen2.Generate(context.Background()))
		assert.Equal(t, 0, gen2.Metrics().FilesWritten)
		assert.Equal(t, 2, gen2.Metrics().FilesUnchanged)
	})

	t.Run("cancelled context", func(t *testing.T) {
		target := t.TempDir()
		gen := NewJenniferGenerator(newTestGraph(t, &Config{}), target)
		gen.WithDialect(&stubDialect{helper: gen})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, gen.Generate(ctx), context.Canceled)
	})
}

func TestGeneratorHelper(t *testing.T) {
	g := newTestGraph(t, &Config{Header: "custom header", Features: []Feature{FeatureYAML}})
	gen := NewJenniferGenerator(g, "/tmp/out").WithPackage("sample").WithWorkers(0)

	assert.Same(t, g, gen.Graph())
	assert.Equal(t, "sample", gen.Pkg())
	assert.Equal(t, RuntimePkg, gen.RuntimePkg())
	assert.True(t, gen.FeatureEnabled("yaml"))
	assert.False(t, gen.FeatureEnabled("json"))
	assert.False(t, gen.FeatureEnabled("unknown"))
	assert.Equal(t, slog.Default(), gen.Logger())

	f := gen.NewFile("sample")
	f.Var().Id("_").Op("=").Qual(RuntimePkg, "ErrInvalidValue")
	code := f.GoString()
	assert.Contains(t, code, "// custom header")
	assert.Contains(t, code, `"github.com/syssam/strenum"`)
	assert.Contains(t, code, "strenum.ErrInvalidValue")
}

func TestFileWriter(t *testing.T) {
	t.Run("reports format errors", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)
		f := jen.NewFile("x")
		f.Op("}{")
		_, err := w.Write(f, "bad.go")
		require.Error(t, err)
		assert.True(t, IsGenerationError(err))
	})

	t.Run("writes into sub directories", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)
		f := jen.NewFile("x")
		f.Const().Id("A").Op("=").Lit(1)
		written, err := w.Write(f, filepath.Join("sub", "a.go"))
		require.NoError(t, err)
		assert.True(t, written)
		_, err = os.Stat(filepath.Join(dir, "sub", "a.go"))
		assert.NoError(t, err)
	})

	t.Run("replaces files atomically", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)
		for i := range 2 {
			f := jen.NewFile("x")
			f.Const().Id("A").Op("=").Lit(i)
			written, err := w.Write(f, "a.go")
			require.NoError(t, err)
			assert.True(t, written)
		}
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "no temporary files are left behind")
		assert.Equal(t, "a.go", entries[0].Name())

		info, err := entries[0].Info()
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
		buf, err := os.ReadFile(filepath.Join(dir, "a.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), "const A = 1")
	})
}
