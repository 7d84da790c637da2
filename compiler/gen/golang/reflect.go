package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
)

// genReflect emits the strenum.Enum implementation.
func genReflect(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	rt := h.RuntimePkg()
	r := t.Receiver()

	f.Var().Defs(
		jen.Id(t.NamesVar()).Op("=").Add(arrayOf(t, jen.String())).ValuesFunc(func(g *jen.Group) {
			for _, v := range t.Variants {
				g.Lit(v.Name)
			}
		}),
		jen.Id(t.DescriptorVar()).Op("=").Qual(rt, "NewDescriptor").CallFunc(func(g *jen.Group) {
			g.Line().Lit(t.Name)
			g.Line().Id(t.ValueTableName())
			for i, v := range t.Variants {
				d := jen.Dict{
					jen.Id("Name"):         jen.Id(t.NamesVar()).Index(jen.Lit(i)),
					jen.Id("Value"):        jen.Id(t.ValuesVar()).Index(jen.Lit(i)),
					jen.Id("Discriminant"): jen.Id(v.DiscriminantLit()),
				}
				if len(v.Aliases) > 0 {
					aliases := make([]jen.Code, len(v.Aliases))
					for j, a := range v.Aliases {
						aliases[j] = jen.Lit(a)
					}
					d[jen.Id("Aliases")] = jen.Index().String().Values(aliases...)
				}
				g.Line().Qual(rt, "VariantDescriptor").Values(d)
			}
			g.Line()
		}),
	)

	f.Comment("VariantName returns the declared name of the variant, or an empty string.")
	f.Func().Params(recv(t)).Id("VariantName").Params().String().Block(
		jen.If(jen.Id("i").Op(":=").Id(r).Dot("index").Call(), jen.Id("i").Op(">=").Lit(0)).Block(
			jen.Return(jen.Id(t.NamesVar()).Index(jen.Id("i"))),
		),
		jen.Return(jen.Lit("")),
	)

	f.Comment("Discriminant returns the integer value of the variant.")
	f.Func().Params(recv(t)).Id("Discriminant").Params().Int64().Block(
		jen.Return(jen.Int64().Call(jen.Id(r))),
	)

	f.Comment("EnumDescriptor returns the descriptor shared by all values of the type.")
	f.Func().Params(jen.Id(t.Name)).Id("EnumDescriptor").Params().Op("*").Qual(rt, "Descriptor").Block(
		jen.Return(jen.Id(t.DescriptorVar())),
	)

	f.Comment(fmt.Sprintf("%s returns the declared names of all %s variants in declaration order.", t.VariantNamesFunc(), t.Name))
	f.Func().Id(t.VariantNamesFunc()).Params().Add(arrayOf(t, jen.String())).Block(
		jen.Return(jen.Id(t.NamesVar())),
	)

	f.Comment(fmt.Sprintf("%s returns an iterator over all %s variants in declaration order.", t.AllFunc(), t.Name))
	f.Func().Id(t.AllFunc()).Params().Qual("iter", "Seq").Types(jen.Id(t.Name)).Block(
		jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(jen.Id(t.Name)).Bool()).Block(
			jen.For(jen.List(jen.Id("_"), jen.Id(r)).Op(":=").Range().Id(t.VariantsVar())).Block(
				jen.If(jen.Op("!").Id("yield").Call(jen.Id(r))).Block(jen.Return()),
			),
		)),
	)

	f.Var().Id("_").Qual(rt, "Enum").Op("=").Id(t.Variants[0].Const)
}
