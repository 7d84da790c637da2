package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
)

// genErrorType emits the zero-size lookup error, the parse functions that
// return it and the flag.Value methods built on them.
func genErrorType(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	e := t.ErrorType

	f.Comment(fmt.Sprintf("%s is the message of %s.", t.ParseDiagnosticName(), e))
	f.Const().Id(t.ParseDiagnosticName()).Op("=").Lit(t.Table.ParseDiagnostic())

	f.Comment(fmt.Sprintf("%s is returned when parsing text that names no %s variant.", e, t.Name))
	f.Type().Id(e).Struct()

	f.Comment("Error implements the error interface.")
	f.Func().Params(jen.Id(e)).Id("Error").Params().String().Block(
		jen.Return(jen.Id(t.ParseDiagnosticName())),
	)

	f.Comment(fmt.Sprintf("%s returns the variant whose canonical string or alias equals s,", t.ParseFunc()))
	f.Comment(fmt.Sprintf("or %s{} if there is none.", e))
	f.Func().Id(t.ParseFunc()).Params(jen.Id("s").String()).Params(jen.Id(t.Name), jen.Error()).Block(
		jen.If(jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(t.LookupFunc()).Call(jen.Id("s")), jen.Id("ok")).Block(
			jen.Return(jen.Id("v"), jen.Nil()),
		),
		jen.Return(jen.Lit(0), jen.Id(e).Values()),
	)

	f.Comment(fmt.Sprintf("%s is like %s for raw bytes. Input that is not valid UTF-8", t.ParseBytesFunc(), t.ParseFunc()))
	f.Comment(fmt.Sprintf("fails with a *strenum.UTF8Error instead of %s.", e))
	f.Func().Id(t.ParseBytesFunc()).Params(jen.Id("b").Index().Byte()).Params(jen.Id(t.Name), jen.Error()).Block(
		jen.If(jen.Err().Op(":=").Qual(h.RuntimePkg(), "ValidUTF8").Call(jen.Id("b")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Lit(0), jen.Err()),
		),
		jen.Return(jen.Id(t.ParseFunc()).Call(jen.String().Call(jen.Id("b")))),
	)

	f.Comment("Set implements flag.Value.")
	f.Func().Params(precv(t)).Id("Set").Params(jen.Id("s").String()).Error().Block(
		jen.List(jen.Id("p"), jen.Err()).Op(":=").Id(t.ParseFunc()).Call(jen.Id("s")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id(t.Receiver()).Op("=").Id("p"),
		jen.Return(jen.Nil()),
	)

	f.Comment("Type implements pflag.Value.")
	f.Func().Params(jen.Id(t.Name)).Id("Type").Params().String().Block(
		jen.Return(jen.Lit(t.Name)),
	)
}
