package gen

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// RuntimePkg is the import path of the runtime package used by
// generated code.
const RuntimePkg = "github.com/syssam/strenum"

// JenniferGenerator generates code using Jennifer. Every enum is
// rendered into its own file, in parallel.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string

	// Dialect generator for the output code.
	dialect Dialect

	writer *FileWriter
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/strenum/compiler/gen/golang"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	gen.WithDialect(golang.NewDialect(gen))
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		writer:  NewFileWriter(outDir),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d Dialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Metrics returns the metrics of the file writer.
func (g *JenniferGenerator) Metrics() WriterMetrics {
	return g.writer.Metrics()
}

// Generate renders and writes one file per enum with parallel execution.
// Returns an error if no dialect has been set via WithDialect().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("write", g.outDir, "create output directory", err)
	}
	log := g.Logger().With("dialect", g.dialect.Name(), "target", g.outDir)
	start := time.Now()

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, t := range g.graph.Nodes {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := g.dialect.GenEnum(t)
			written, err := g.writer.Write(f, t.FileName())
			if err != nil {
				return err
			}
			log.Debug("enum generated", "enum", t.Name, "file", t.FileName(), "variants", len(t.Variants), "written", written)
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	m := g.writer.Metrics()
	log.Info("generation finished",
		"enums", len(g.graph.Nodes),
		"written", m.FilesWritten,
		"unchanged", m.FilesUnchanged,
		"bytes", m.TotalBytes,
		"elapsed", time.Since(start),
	)
	return nil
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(g.graph.header())
	f.ImportName(RuntimePkg, "strenum")
	return f
}

// Graph returns the enum graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// RuntimePkg returns the import path of the runtime package.
func (g *JenniferGenerator) RuntimePkg() string {
	return RuntimePkg
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	enabled, _ := g.graph.FeatureEnabled(name)
	return enabled
}

// Logger returns the generation logger.
func (g *JenniferGenerator) Logger() *slog.Logger {
	return g.graph.Log()
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)
