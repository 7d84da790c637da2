package golang

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strenum/compiler/gen"
	"github.com/syssam/strenum/compiler/load"
)

// parses reports whether code is a syntactically valid Go file.
func parses(t *testing.T, code string) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "enum.go", code, parser.AllErrors)
	require.NoError(t, err, code)
}

func TestDialectName(t *testing.T) {
	d := NewDialect(newMockHelper())
	assert.Equal(t, "golang", d.Name())
}

func TestGenEnum_Core(t *testing.T) {
	helper := newMockHelper()
	code := NewDialect(helper).GenEnum(createTestType(t, myEnum())).GoString()
	parses(t, code)

	assert.Contains(t, code, "// "+gen.DefaultHeader)
	assert.Contains(t, code, "package sample")
	assert.Contains(t, code, "// MyEnum is a string enumeration with 2 variants.")
	assert.Contains(t, code, "type MyEnum uint8")
	assert.Contains(t, code, "MyEnumVariant1 MyEnum = 0")
	assert.Contains(t, code, "MyEnumVariant2 MyEnum = 1")
	assert.Contains(t, code, "MyEnumVariant2 MyEnum = 1\n)\n\nconst (\n\t// MyEnumNumVariants", "const blocks are separated by a blank line")
	assert.Contains(t, code, `"Variant1,Variant2"`)
	assert.Contains(t, code, "[MyEnumNumVariants]string{MyEnumValueTable[0:8], MyEnumValueTable[9:17]}")
	assert.Contains(t, code, "[MyEnumNumVariants]MyEnum{MyEnumVariant1, MyEnumVariant2}")
	assert.Contains(t, code, "if uint64(v) < MyEnumNumVariants {")
	assert.Contains(t, code, "func (v MyEnum) String() string {")
	assert.Contains(t, code, `return "MyEnum(" + strconv.FormatUint(uint64(v), 10) + ")"`)
	assert.Contains(t, code, "func (v MyEnum) IsValid() bool {")
	assert.Contains(t, code, "func (v MyEnum) Len() int {")
	assert.Contains(t, code, "func LookupMyEnum(s string) (MyEnum, bool) {")
	assert.Contains(t, code, `case "Variant1", "variant1":`)
	assert.Contains(t, code, `case "Variant2":`)
	assert.Contains(t, code, "func MyEnumVariants() [MyEnumNumVariants]MyEnum {")
	assert.Contains(t, code, "func MyEnumValues() [MyEnumNumVariants]string {")

	// No feature enabled: no reflection and no serialization adapters.
	assert.NotContains(t, code, "EnumDescriptor")
	assert.NotContains(t, code, "MarshalJSON")
	assert.NotContains(t, code, "decodeMyEnum")
}

func TestGenEnum_Sparse(t *testing.T) {
	code := NewDialect(newMockHelper()).GenEnum(createTestType(t, level())).GoString()
	parses(t, code)

	assert.Contains(t, code, "type Level int8")
	assert.Contains(t, code, "= -4")
	assert.Contains(t, code, "= -3")
	assert.Contains(t, code, "= 4")
	assert.Contains(t, code, "case LevelDebug:")
	assert.NotContains(t, code, "< LevelNumVariants")
	assert.Contains(t, code, `return "Level(" + strconv.FormatInt(int64(v), 10) + ")"`)
	assert.Contains(t, code, "func (v Level) Repr() int8 {")

	// No capabilities and no error type.
	assert.NotContains(t, code, "func (v Level) Equal(")
	assert.NotContains(t, code, "func (v Level) Compare(")
	assert.NotContains(t, code, "GoString")
	assert.NotContains(t, code, "func ParseLevel(")
	assert.NotContains(t, code, "ParseDiagnostic")
}

func TestGenEnum_Adapters(t *testing.T) {
	code := NewDialect(newMockHelper()).GenEnum(createTestType(t, myEnum())).GoString()

	assert.Contains(t, code, "func (v MyEnum) AppendText(b []byte) ([]byte, error) {")
	assert.Contains(t, code, `strenum.NewInvalidVariantError("MyEnum", v.String())`)
	assert.Contains(t, code, "return append(b, _MyEnumValues[i]...), nil")
	assert.Contains(t, code, "func (v MyEnum) WriteTo(w io.Writer) (int64, error) {")
	assert.Contains(t, code, "func (v MyEnum) Hash(seed maphash.Seed) uint64 {")
	assert.Contains(t, code, "return maphash.String(seed, v.String())")
	assert.Contains(t, code, "func (v MyEnum) WriteHash(h hash.Hash) {")
	assert.Contains(t, code, "func (v MyEnum) EqualString(s string) bool {")
	assert.Contains(t, code, "return strings.Compare(v.String(), s)")
	assert.NotContains(t, code, "Repr()")

	// Capabilities.
	assert.Contains(t, code, "func (v MyEnum) Equal(o MyEnum) bool {")
	assert.Contains(t, code, "return cmp.Compare(v.index(), o.index())")
	assert.Contains(t, code, "func (v MyEnum) Less(o MyEnum) bool {")
	assert.Contains(t, code, "func (v MyEnum) GoString() string {")
	assert.Contains(t, code, `return "sample.MyEnumVariant1"`)
	assert.Contains(t, code, `return "sample." + "MyEnum(" + strconv.FormatUint(uint64(v), 10) + ")"`)
}

func TestGenEnum_ErrorType(t *testing.T) {
	code := NewDialect(newMockHelper()).GenEnum(createTestType(t, myEnum())).GoString()

	assert.Contains(t, code, `const MyEnumParseDiagnostic = "expected one of [Variant1,Variant2]"`)
	assert.Contains(t, code, "type MyError struct{}")
	assert.Contains(t, code, "func (MyError) Error() string {")
	assert.Contains(t, code, "func ParseMyEnum(s string) (MyEnum, error) {")
	assert.Contains(t, code, "return 0, MyError{}")
	assert.Contains(t, code, "func ParseMyEnumBytes(b []byte) (MyEnum, error) {")
	assert.Contains(t, code, "if err := strenum.ValidUTF8(b); err != nil {")
	assert.Contains(t, code, "func (v *MyEnum) Set(s string) error {")
	assert.Contains(t, code, "func (MyEnum) Type() string {")
}

func TestGenEnum_Reflect(t *testing.T) {
	helper := newMockHelper(gen.FeatureReflect.Name)
	code := NewDialect(helper).GenEnum(createTestType(t, level())).GoString()
	parses(t, code)

	assert.Contains(t, code, `[LevelNumVariants]string{"Debug", "Info", "Warn"}`)
	assert.Contains(t, code, "strenum.NewDescriptor(")
	assert.Contains(t, code, "Discriminant: -4")
	assert.Regexp(t, `Name:\s+_LevelNames\[0\]`, code)
	assert.Contains(t, code, "func (v Level) VariantName() string {")
	assert.Contains(t, code, "func (v Level) Discriminant() int64 {")
	assert.Contains(t, code, "func (Level) EnumDescriptor() *strenum.Descriptor {")
	assert.Contains(t, code, "func LevelVariantNames() [LevelNumVariants]string {")
	assert.Contains(t, code, "func LevelAll() iter.Seq[Level] {")
	assert.Contains(t, code, "var _ strenum.Enum = LevelDebug")

	code = NewDialect(helper).GenEnum(createTestType(t, myEnum())).GoString()
	assert.Regexp(t, `Aliases:\s+\[\]string\{"variant1"\}`, code)
}

func TestGenEnum_Serial(t *testing.T) {
	tests := []struct {
		feature  string
		contains []string
	}{
		{
			feature: gen.FeatureText.Name,
			contains: []string{
				"func (v MyEnum) MarshalText() ([]byte, error) {",
				"return v.AppendText(nil)",
				"func (v *MyEnum) UnmarshalText(b []byte) error {",
				"p, err := decodeMyEnum(string(b))",
			},
		},
		{
			feature: gen.FeatureJSON.Name,
			contains: []string{
				`"encoding/json"`,
				"return json.Marshal(_MyEnumValues[i])",
				"if err := json.Unmarshal(b, &s); err != nil {",
			},
		},
		{
			feature: gen.FeatureYAML.Name,
			contains: []string{
				`"gopkg.in/yaml.v3"`,
				"func (v MyEnum) MarshalYAML() (any, error) {",
				"func (v *MyEnum) UnmarshalYAML(n *yaml.Node) error {",
				"if err := n.Decode(&s); err != nil {",
			},
		},
		{
			feature: gen.FeatureMsgpack.Name,
			contains: []string{
				`"github.com/vmihailenco/msgpack/v5"`,
				"func (v MyEnum) EncodeMsgpack(enc *msgpack.Encoder) error {",
				"return enc.EncodeString(_MyEnumValues[i])",
				"s, err := dec.DecodeString()",
			},
		},
		{
			feature: gen.FeatureSQL.Name,
			contains: []string{
				"func (v MyEnum) Value() (driver.Value, error) {",
				"func (v *MyEnum) Scan(src any) error {",
				"switch src := src.(type) {",
				`return fmt.Errorf("cannot scan %T into MyEnum", src)`,
			},
		},
		{
			feature: gen.FeatureGQL.Name,
			contains: []string{
				"func (v MyEnum) MarshalGQL(w io.Writer) {",
				"graphql.Null.MarshalGQL(w)",
				"graphql.MarshalString(_MyEnumValues[i]).MarshalGQL(w)",
				`"github.com/99designs/gqlgen/graphql"`,
				"func (v *MyEnum) UnmarshalGQL(src any) error {",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			code := NewDialect(newMockHelper(tt.feature)).GenEnum(createTestType(t, myEnum())).GoString()
			parses(t, code)
			assert.Contains(t, code, `const MyEnumExpected = "one of [Variant1,Variant2]"`)
			assert.Contains(t, code, "func decodeMyEnum(s string) (MyEnum, error) {")
			assert.Contains(t, code, "return 0, strenum.NewValueError(s, MyEnumExpected)")
			for _, s := range tt.contains {
				assert.Contains(t, code, s)
			}
		})
	}
}

func TestGenEnum_AllFeatures(t *testing.T) {
	names := make([]string, 0, len(gen.AllFeatures))
	for _, f := range gen.AllFeatures {
		names = append(names, f.Name)
	}
	helper := newMockHelper(names...)
	for _, s := range []func() *gen.Type{
		func() *gen.Type { return createTestType(t, myEnum()) },
		func() *gen.Type { return createTestType(t, level()) },
	} {
		parses(t, NewDialect(helper).GenEnum(s()).GoString())
	}
}

func TestGenerate(t *testing.T) {
	t.Run("requires a target", func(t *testing.T) {
		g, err := gen.NewGraph(&gen.Config{}, myEnum())
		require.NoError(t, err)
		err = Generate(context.Background(), g)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("writes formatted files", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "sample")
		cfg, err := gen.NewConfig(
			gen.WithTarget(target),
			gen.WithFeatures(gen.AllFeatures...),
		)
		require.NoError(t, err)
		g, err := gen.NewGraph(cfg, myEnum(), level())
		require.NoError(t, err)
		require.NoError(t, Generator.Generate(context.Background(), g))

		buf, err := os.ReadFile(filepath.Join(target, "my_enum.go"))
		require.NoError(t, err)
		parses(t, string(buf))
		assert.Contains(t, string(buf), "package sample")
		assert.Contains(t, string(buf), "func (v MyEnum) MarshalJSON() ([]byte, error) {")

		buf, err = os.ReadFile(filepath.Join(target, "level.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), "type Level int8")
	})
}

func TestGenEnum_AliasPrecedence(t *testing.T) {
	typ := createTestType(t, &load.Schema{
		Name: "Answer",
		Variants: []*load.Variant{
			{Name: "Yes", Value: "yes", Aliases: []string{"y", "ok"}},
			{Name: "No", Value: "no", Aliases: []string{"n", "ok"}},
		},
	})
	code := NewDialect(newMockHelper()).GenEnum(typ).GoString()
	parses(t, code)
	assert.Contains(t, code, `case "yes", "y", "ok":`)
	assert.Contains(t, code, `case "no", "n":`)
}

func TestGenEnum_ControlCharacters(t *testing.T) {
	typ := createTestType(t, &load.Schema{
		Name: "Odd",
		Variants: []*load.Variant{
			{Name: "Ctl", Value: "x\u0001y"},
			{Name: "Plain", Value: "plain"},
		},
	})
	code := NewDialect(newMockHelper(gen.FeatureGQL.Name)).GenEnum(typ).GoString()
	parses(t, code)
	assert.Contains(t, code, `OddValueTable = "x\x01y,plain"`)
	// GraphQL output is quoted by gqlgen, which emits JSON escapes.
	assert.Contains(t, code, "graphql.MarshalString(_OddValues[i]).MarshalGQL(w)")
	assert.NotContains(t, code, "strconv.Quote")
}
