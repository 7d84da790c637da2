// Package golang provides the Go dialect of the strenum code generator.
//
// Usage:
//
//	import (
//	    "github.com/syssam/strenum/compiler/gen"
//	    "github.com/syssam/strenum/compiler/gen/golang"
//	)
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(golang.NewDialect(generator))
//	generator.Generate(ctx)
//
// Every enum is generated into one file ({enum}.go) holding:
//
//	core      type, constants, value table, lookup, listings
//	adapters  text append, io.WriterTo, hashing, comparison with strings
//	errtype   lookup error type and parse functions (error_type set)
//	reflect   strenum.Enum implementation (reflect feature)
//	serial    text/json/yaml/msgpack/sql/gql adapters (per feature)
package golang

import (
	"context"
	"slices"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
)

// Generator is the default gen.Generator of the Go dialect.
var Generator gen.Generator = gen.GenerateFunc(Generate)

// Generate generates Go code for the graph using the Jennifer generator.
// Hooks are not applied here; use g.Gen for that.
func Generate(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	generator := gen.NewJenniferGenerator(g, g.Target).WithWorkers(g.Workers)
	if g.Package != "" {
		generator.WithPackage(g.Package)
	}
	generator.WithDialect(NewDialect(generator))
	return generator.Generate(ctx)
}

// Dialect implements gen.Dialect for Go source.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new Go dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "golang"
}

// GenEnum generates the enum file ({enum}.go).
func (d *Dialect) GenEnum(t *gen.Type) *jen.File {
	return genEnum(d.helper, t)
}

var _ gen.Dialect = (*Dialect)(nil)

// serialFeatures lists the features emitting serialization adapters.
var serialFeatures = []string{
	gen.FeatureText.Name,
	gen.FeatureJSON.Name,
	gen.FeatureYAML.Name,
	gen.FeatureMsgpack.Name,
	gen.FeatureSQL.Name,
	gen.FeatureGQL.Name,
}

func genEnum(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	genCore(h, f, t)
	genAdapters(h, f, t)
	if t.HasErrorType() {
		genErrorType(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureReflect.Name) {
		genReflect(h, f, t)
	}
	if slices.ContainsFunc(serialFeatures, h.FeatureEnabled) {
		genSerial(h, f, t)
	}
	return f
}

// recv returns the value receiver of t.
func recv(t *gen.Type) *jen.Statement {
	return jen.Id(t.Receiver()).Id(t.Name)
}

// precv returns the pointer receiver of t.
func precv(t *gen.Type) *jen.Statement {
	return jen.Id(t.Receiver()).Op("*").Id(t.Name)
}

// arrayOf returns the [TNumVariants]elem array type.
func arrayOf(t *gen.Type, elem jen.Code) *jen.Statement {
	return jen.Index(jen.Id(t.NumVariantsName())).Add(elem)
}

// fallback renders the text of values that are not declared variants,
// e.g. Color(7).
func fallback(t *gen.Type) *jen.Statement {
	conv := jen.Qual("strconv", "FormatUint").Call(jen.Uint64().Call(jen.Id(t.Receiver())), jen.Lit(10))
	if t.Signed() {
		conv = jen.Qual("strconv", "FormatInt").Call(jen.Int64().Call(jen.Id(t.Receiver())), jen.Lit(10))
	}
	return jen.Lit(t.Name + "(").Op("+").Add(conv).Op("+").Lit(")")
}

// invalidVariant returns the error for encoding an undeclared value.
func invalidVariant(h gen.GeneratorHelper, t *gen.Type) *jen.Statement {
	return jen.Qual(h.RuntimePkg(), "NewInvalidVariantError").Call(jen.Lit(t.Name), jen.Id(t.Receiver()).Dot("String").Call())
}

// canonical emits "i := v.index(); if i < 0 { return <zero>, err }" and
// returns the expression of the canonical string.
func canonical(h gen.GeneratorHelper, t *gen.Type, g *jen.Group, zero ...jen.Code) jen.Code {
	g.Id("i").Op(":=").Id(t.Receiver()).Dot("index").Call()
	g.If(jen.Id("i").Op("<").Lit(0)).Block(
		jen.Return(append(zero, invalidVariant(h, t))...),
	)
	return jen.Id(t.ValuesVar()).Index(jen.Id("i"))
}

// assign emits the tail of every decoding method: decode s into p and
// store it in the receiver.
func assign(t *gen.Type, g *jen.Group, s jen.Code) {
	g.List(jen.Id("p"), jen.Err()).Op(":=").Id(t.DecodeFunc()).Call(s)
	g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err()))
	g.Op("*").Id(t.Receiver()).Op("=").Id("p")
	g.Return(jen.Nil())
}
