package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
)

// genCore emits the type, its constants and the minimal lookup contract.
func genCore(_ gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	comment := t.Comment
	if comment == "" {
		comment = fmt.Sprintf("%s is a string enumeration with %d variants.", t.Name, len(t.Variants))
	}
	f.Comment(comment)
	f.Type().Id(t.Name).Id(t.Underlying())

	f.Comment(fmt.Sprintf("%s variants, in declaration order.", t.Name))
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range t.Variants {
			g.Id(v.Const).Id(t.Name).Op("=").Id(v.DiscriminantLit())
		}
	})
	f.Line()

	f.Const().Defs(
		jen.Comment(fmt.Sprintf("%s is the number of %s variants.", t.NumVariantsName(), t.Name)),
		jen.Id(t.NumVariantsName()).Op("=").Lit(len(t.Variants)),
		jen.Comment(fmt.Sprintf("%s holds the canonical strings of all %s variants, in declaration order.", t.ValueTableName(), t.Name)),
		jen.Id(t.ValueTableName()).Op("=").Lit(t.Table.Value),
	)

	f.Var().Defs(
		jen.Id(t.ValuesVar()).Op("=").Add(arrayOf(t, jen.String())).ValuesFunc(func(g *jen.Group) {
			for i := range t.Variants {
				start, end := t.Table.Span(i)
				g.Id(t.ValueTableName()).Index(jen.Lit(start), jen.Lit(end))
			}
		}),
		jen.Id(t.VariantsVar()).Op("=").Add(arrayOf(t, jen.Id(t.Name))).ValuesFunc(func(g *jen.Group) {
			for _, v := range t.Variants {
				g.Id(v.Const)
			}
		}),
	)

	genIndex(f, t)

	f.Comment("String returns the canonical string of the variant.")
	f.Func().Params(recv(t)).Id("String").Params().String().Block(
		jen.If(jen.Id("i").Op(":=").Id(t.Receiver()).Dot("index").Call(), jen.Id("i").Op(">=").Lit(0)).Block(
			jen.Return(jen.Id(t.ValuesVar()).Index(jen.Id("i"))),
		),
		jen.Return(fallback(t)),
	)

	f.Comment(fmt.Sprintf("IsValid reports whether the value is a declared %s variant.", t.Name))
	f.Func().Params(recv(t)).Id("IsValid").Params().Bool().Block(
		jen.Return(jen.Id(t.Receiver()).Dot("index").Call().Op(">=").Lit(0)),
	)

	f.Comment("Len returns the byte length of the canonical string, or 0 for undeclared values.")
	f.Func().Params(recv(t)).Id("Len").Params().Int().Block(
		jen.If(jen.Id("i").Op(":=").Id(t.Receiver()).Dot("index").Call(), jen.Id("i").Op(">=").Lit(0)).Block(
			jen.Return(jen.Len(jen.Id(t.ValuesVar()).Index(jen.Id("i")))),
		),
		jen.Return(jen.Lit(0)),
	)

	f.Comment(fmt.Sprintf("%s returns the first variant, in declaration order, whose canonical", t.LookupFunc()))
	f.Comment("string or alias equals s. The match is exact and case-sensitive.")
	f.Func().Id(t.LookupFunc()).Params(jen.Id("s").String()).Params(jen.Id(t.Name), jen.Bool()).Block(
		jen.Switch(jen.Id("s")).BlockFunc(func(g *jen.Group) {
			for _, v := range t.Variants {
				lits := make([]jen.Code, len(v.Literals))
				for i, l := range v.Literals {
					lits[i] = jen.Lit(l)
				}
				g.Case(lits...).Block(jen.Return(jen.Id(v.Const), jen.True()))
			}
		}),
		jen.Return(jen.Lit(0), jen.False()),
	)

	f.Comment(fmt.Sprintf("%s returns all %s variants in declaration order.", t.VariantsFunc(), t.Name))
	f.Func().Id(t.VariantsFunc()).Params().Add(arrayOf(t, jen.Id(t.Name))).Block(
		jen.Return(jen.Id(t.VariantsVar())),
	)

	f.Comment(fmt.Sprintf("%s returns the canonical strings of all %s variants in declaration order.", t.ValuesFunc(), t.Name))
	f.Func().Id(t.ValuesFunc()).Params().Add(arrayOf(t, jen.String())).Block(
		jen.Return(jen.Id(t.ValuesVar())),
	)
}

// genIndex emits the unexported index method. Dense enums are their own
// index; others switch over the constants.
func genIndex(f *jen.File, t *gen.Type) {
	f.Comment("index returns the declaration index of the variant, or -1.")
	f.Func().Params(recv(t)).Id("index").Params().Int().BlockFunc(func(g *jen.Group) {
		if t.Dense() {
			g.If(jen.Uint64().Call(jen.Id(t.Receiver())).Op("<").Id(t.NumVariantsName())).Block(
				jen.Return(jen.Int().Call(jen.Id(t.Receiver()))),
			)
			g.Return(jen.Lit(-1))
			return
		}
		g.Switch(jen.Id(t.Receiver())).BlockFunc(func(g *jen.Group) {
			for i, v := range t.Variants {
				g.Case(jen.Id(v.Const)).Block(jen.Return(jen.Lit(i)))
			}
		})
		g.Return(jen.Lit(-1))
	})
}
