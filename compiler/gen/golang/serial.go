package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/strenum/compiler/gen"
)

// Import paths of the serialization protocols.
const (
	yamlPkg    = "gopkg.in/yaml.v3"
	msgpackPkg = "github.com/vmihailenco/msgpack/v5"
	gqlPkg     = "github.com/99designs/gqlgen/graphql"
)

// genSerial emits the shared decoding helper and one adapter pair per
// enabled serialization feature. Decoding failures report the
// serialization diagnostic through *strenum.ValueError.
func genSerial(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	rt := h.RuntimePkg()
	f.ImportName(yamlPkg, "yaml")
	f.ImportName(msgpackPkg, "msgpack")
	f.ImportName(gqlPkg, "graphql")

	f.Comment(fmt.Sprintf("%s describes the accepted %s values in decoding errors.", t.ExpectedName(), t.Name))
	f.Const().Id(t.ExpectedName()).Op("=").Lit(t.Table.SerialDiagnostic())

	f.Func().Id(t.DecodeFunc()).Params(jen.Id("s").String()).Params(jen.Id(t.Name), jen.Error()).Block(
		jen.If(jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(t.LookupFunc()).Call(jen.Id("s")), jen.Id("ok")).Block(
			jen.Return(jen.Id("v"), jen.Nil()),
		),
		jen.Return(jen.Lit(0), jen.Qual(rt, "NewValueError").Call(jen.Id("s"), jen.Id(t.ExpectedName()))),
	)

	if h.FeatureEnabled(gen.FeatureText.Name) {
		genText(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureJSON.Name) {
		genJSON(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureYAML.Name) {
		genYAML(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureMsgpack.Name) {
		genMsgpack(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureSQL.Name) {
		genSQL(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureGQL.Name) {
		genGQL(h, f, t)
	}
}

func genText(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("MarshalText implements encoding.TextMarshaler.")
	f.Func().Params(recv(t)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Id(t.Receiver()).Dot("AppendText").Call(jen.Nil())),
	)

	f.Comment("UnmarshalText implements encoding.TextUnmarshaler.")
	f.Func().Params(precv(t)).Id("UnmarshalText").Params(jen.Id("b").Index().Byte()).Error().BlockFunc(func(g *jen.Group) {
		g.If(jen.Err().Op(":=").Qual(h.RuntimePkg(), "ValidUTF8").Call(jen.Id("b")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		)
		assign(t, g, jen.String().Call(jen.Id("b")))
	})
}

func genJSON(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("MarshalJSON implements json.Marshaler.")
	f.Func().Params(recv(t)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).BlockFunc(func(g *jen.Group) {
		s := canonical(h, t, g, jen.Nil())
		g.Return(jen.Qual("encoding/json", "Marshal").Call(s))
	})

	f.Comment("UnmarshalJSON implements json.Unmarshaler.")
	f.Func().Params(precv(t)).Id("UnmarshalJSON").Params(jen.Id("b").Index().Byte()).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Id("s").String()
		g.If(jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("b"), jen.Op("&").Id("s")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		)
		assign(t, g, jen.Id("s"))
	})
}

func genYAML(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("MarshalYAML implements yaml.Marshaler.")
	f.Func().Params(recv(t)).Id("MarshalYAML").Params().Params(jen.Any(), jen.Error()).BlockFunc(func(g *jen.Group) {
		s := canonical(h, t, g, jen.Nil())
		g.Return(s, jen.Nil())
	})

	f.Comment("UnmarshalYAML implements yaml.Unmarshaler.")
	f.Func().Params(precv(t)).Id("UnmarshalYAML").Params(jen.Id("n").Op("*").Qual(yamlPkg, "Node")).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Id("s").String()
		g.If(jen.Err().Op(":=").Id("n").Dot("Decode").Call(jen.Op("&").Id("s")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		)
		assign(t, g, jen.Id("s"))
	})
}

func genMsgpack(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("EncodeMsgpack implements msgpack.CustomEncoder.")
	f.Func().Params(recv(t)).Id("EncodeMsgpack").Params(jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder")).Error().BlockFunc(func(g *jen.Group) {
		s := canonical(h, t, g)
		g.Return(jen.Id("enc").Dot("EncodeString").Call(s))
	})

	f.Comment("DecodeMsgpack implements msgpack.CustomDecoder.")
	f.Func().Params(precv(t)).Id("DecodeMsgpack").Params(jen.Id("dec").Op("*").Qual(msgpackPkg, "Decoder")).Error().BlockFunc(func(g *jen.Group) {
		g.List(jen.Id("s"), jen.Err()).Op(":=").Id("dec").Dot("DecodeString").Call()
		g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err()))
		assign(t, g, jen.Id("s"))
	})
}

func genSQL(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("Value implements driver.Valuer.")
	f.Func().Params(recv(t)).Id("Value").Params().Params(jen.Qual("database/sql/driver", "Value"), jen.Error()).BlockFunc(func(g *jen.Group) {
		s := canonical(h, t, g, jen.Nil())
		g.Return(s, jen.Nil())
	})

	f.Comment("Scan implements sql.Scanner.")
	f.Func().Params(precv(t)).Id("Scan").Params(jen.Id("src").Any()).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Id("s").String()
		g.Switch(jen.Id("src").Op(":=").Id("src").Assert(jen.Type())).Block(
			jen.Case(jen.String()).Block(
				jen.Id("s").Op("=").Id("src"),
			),
			jen.Case(jen.Index().Byte()).Block(
				jen.If(jen.Err().Op(":=").Qual(h.RuntimePkg(), "ValidUTF8").Call(jen.Id("src")), jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Err()),
				),
				jen.Id("s").Op("=").String().Call(jen.Id("src")),
			),
			jen.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("cannot scan %T into "+t.Name), jen.Id("src"))),
			),
		)
		assign(t, g, jen.Id("s"))
	})
}

func genGQL(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Comment("MarshalGQL implements graphql.Marshaler. Undeclared values are written as null.")
	f.Func().Params(recv(t)).Id("MarshalGQL").Params(jen.Id("w").Qual("io", "Writer")).Block(
		jen.Id("i").Op(":=").Id(t.Receiver()).Dot("index").Call(),
		jen.If(jen.Id("i").Op("<").Lit(0)).Block(
			jen.Qual(gqlPkg, "Null").Dot("MarshalGQL").Call(jen.Id("w")),
			jen.Return(),
		),
		jen.Qual(gqlPkg, "MarshalString").Call(jen.Id(t.ValuesVar()).Index(jen.Id("i"))).Dot("MarshalGQL").Call(jen.Id("w")),
	)

	f.Comment("UnmarshalGQL implements graphql.Unmarshaler.")
	f.Func().Params(precv(t)).Id("UnmarshalGQL").Params(jen.Id("src").Any()).Error().BlockFunc(func(g *jen.Group) {
		g.List(jen.Id("s"), jen.Id("ok")).Op(":=").Id("src").Assert(jen.String())
		g.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit(t.Name+" must be a string, got %T"), jen.Id("src"))),
		)
		assign(t, g, jen.Id("s"))
	})
}
