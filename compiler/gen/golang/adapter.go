package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
	"github.com/syssam/strenum/schema"
)

// genAdapters emits the adapters that let the type stand in for its
// canonical string, followed by the requested capabilities.
func genAdapters(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	r := t.Receiver()

	f.Comment("AppendText implements encoding.TextAppender by appending the canonical string.")
	f.Func().Params(recv(t)).Id("AppendText").Params(jen.Id("b").Index().Byte()).Params(jen.Index().Byte(), jen.Error()).BlockFunc(func(g *jen.Group) {
		s := canonical(h, t, g, jen.Id("b"))
		g.Return(jen.Append(jen.Id("b"), jen.Add(s).Op("...")), jen.Nil())
	})

	f.Comment("WriteTo implements io.WriterTo by writing the canonical string.")
	f.Func().Params(recv(t)).Id("WriteTo").Params(jen.Id("w").Qual("io", "Writer")).Params(jen.Int64(), jen.Error()).Block(
		jen.List(jen.Id("n"), jen.Err()).Op(":=").Qual("io", "WriteString").Call(jen.Id("w"), jen.Id(r).Dot("String").Call()),
		jen.Return(jen.Int64().Call(jen.Id("n")), jen.Err()),
	)

	f.Comment("Hash returns the hash of the canonical string. It equals maphash.String(seed, v.String()),")
	f.Comment("so variant and string keys hash alike.")
	f.Func().Params(recv(t)).Id("Hash").Params(jen.Id("seed").Qual("hash/maphash", "Seed")).Uint64().Block(
		jen.Return(jen.Qual("hash/maphash", "String").Call(jen.Id("seed"), jen.Id(r).Dot("String").Call())),
	)

	f.Comment("WriteHash writes the canonical string to h.")
	f.Func().Params(recv(t)).Id("WriteHash").Params(jen.Id("h").Qual("hash", "Hash")).Block(
		jen.List(jen.Id("_"), jen.Id("_")).Op("=").Qual("io", "WriteString").Call(jen.Id("h"), jen.Id(r).Dot("String").Call()),
	)

	f.Comment("EqualString reports whether s is the canonical string of the variant.")
	f.Func().Params(recv(t)).Id("EqualString").Params(jen.Id("s").String()).Bool().Block(
		jen.Id("i").Op(":=").Id(r).Dot("index").Call(),
		jen.Return(jen.Id("i").Op(">=").Lit(0).Op("&&").Id(t.ValuesVar()).Index(jen.Id("i")).Op("==").Id("s")),
	)

	f.Comment("CompareString compares the canonical string with s lexicographically.")
	f.Func().Params(recv(t)).Id("CompareString").Params(jen.Id("s").String()).Int().Block(
		jen.Return(jen.Qual("strings", "Compare").Call(jen.Id(r).Dot("String").Call(), jen.Id("s"))),
	)

	if t.HasRepr() {
		f.Comment("Repr returns the discriminant of the variant.")
		f.Func().Params(recv(t)).Id("Repr").Params().Id(t.Repr).Block(
			jen.Return(jen.Id(t.Repr).Call(jen.Id(r))),
		)
	}

	if t.HasCap(schema.Eq) {
		f.Comment("Equal reports whether both values are the same variant.")
		f.Func().Params(recv(t)).Id("Equal").Params(jen.Id("o").Id(t.Name)).Bool().Block(
			jen.Return(jen.Id(r).Op("==").Id("o")),
		)
	}
	if t.HasCap(schema.Ord) {
		f.Comment("Compare compares two values by declaration order. Undeclared values sort first.")
		f.Func().Params(recv(t)).Id("Compare").Params(jen.Id("o").Id(t.Name)).Int().Block(
			jen.Return(jen.Qual("cmp", "Compare").Call(jen.Id(r).Dot("index").Call(), jen.Id("o").Dot("index").Call())),
		)
		f.Comment("Less reports whether the value is declared before o.")
		f.Func().Params(recv(t)).Id("Less").Params(jen.Id("o").Id(t.Name)).Bool().Block(
			jen.Return(jen.Id(r).Dot("index").Call().Op("<").Id("o").Dot("index").Call()),
		)
	}
	if t.HasCap(schema.Debug) {
		pkg := h.Pkg()
		f.Comment("GoString implements fmt.GoStringer and returns the constant name of the variant.")
		f.Func().Params(recv(t)).Id("GoString").Params().String().Block(
			jen.Switch(jen.Id(r)).BlockFunc(func(g *jen.Group) {
				for _, v := range t.Variants {
					g.Case(jen.Id(v.Const)).Block(jen.Return(jen.Lit(pkg + "." + v.Const)))
				}
			}),
			jen.Return(jen.Lit(pkg+".").Op("+").Add(fallback(t))),
		)
	}
}
