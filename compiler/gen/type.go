package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/syssam/strenum/compiler/load"
	"github.com/syssam/strenum/schema"
)

// The following types and their exported methods used by the codegen
// to generate the assets.
type (
	// Type represents one enum in the graph and the information
	// needed to render it.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the Go type name of the enum.
		Name string
		// Comment holds the doc comment of the type.
		Comment string
		// Prefix is prepended to variant names to form constant names.
		Prefix string
		// ErrorType holds the name of the lookup error type. Empty means
		// no error type and no parse functions are generated.
		ErrorType string
		// Repr holds the declared representation type. Empty means the
		// smallest unsigned type holding all variant indexes.
		Repr string
		// Derive holds the requested capabilities.
		Derive []schema.Capability
		// Variants holds the variants in declaration order.
		Variants []*Variant
		// Table is the value table built from the canonical strings.
		Table *Table
	}

	// Variant holds the information of one enum variant.
	Variant struct {
		// Name is the declared variant name.
		Name string
		// Const is the Go constant name: Prefix + Name.
		Const string
		// Value is the canonical string.
		Value string
		// Aliases holds the declared aliases, without the ones that
		// equal the canonical string.
		Aliases []string
		// Literals holds the strings that resolve to this variant in
		// lookup order: the canonical string followed by the aliases
		// that were not claimed by an earlier variant.
		Literals []string
		// Discriminant is the integer value of the constant.
		Discriminant int64
		// Index is the declaration index.
		Index int
	}
)

// reprRange holds the value range of each representation type. The
// platform-sized int and uint are limited to 32 bits so generated code
// compiles on every GOARCH.
var reprRange = map[string]struct {
	min, max int64
}{
	"int":    {math.MinInt32, math.MaxInt32},
	"int8":   {math.MinInt8, math.MaxInt8},
	"int16":  {math.MinInt16, math.MaxInt16},
	"int32":  {math.MinInt32, math.MaxInt32},
	"int64":  {math.MinInt64, math.MaxInt64},
	"uint":   {0, math.MaxUint32},
	"uint8":  {0, math.MaxUint8},
	"uint16": {0, math.MaxUint16},
	"uint32": {0, math.MaxUint32},
	"uint64": {0, math.MaxInt64},
}

// NewType creates a new type and its variants from the given schema.
// All validation errors are reported together as *SchemaError values.
func NewType(c *Config, s *load.Schema) (*Type, error) {
	if err := ValidSchemaName(s.Name); err != nil {
		return nil, schemaErr(s, "", "invalid enum name", err)
	}
	if c == nil {
		c = &Config{}
	}
	typ := &Type{
		Config:    c,
		schema:    s,
		Name:      s.Name,
		Comment:   s.Comment,
		Prefix:    s.Name,
		ErrorType: s.ErrorType,
		Repr:      s.Repr,
	}
	if s.Prefix != nil {
		typ.Prefix = *s.Prefix
	}
	var errs []error
	if typ.Repr != "" {
		if _, ok := reprRange[typ.Repr]; !ok {
			errs = append(errs, schemaErr(s, "", fmt.Sprintf("unknown repr %q", typ.Repr), nil))
		}
	}
	if typ.ErrorType != "" {
		switch err := ValidSchemaName(typ.ErrorType); {
		case err != nil:
			errs = append(errs, schemaErr(s, "", "invalid error type name", err))
		case typ.ErrorType == typ.Name:
			errs = append(errs, schemaErr(s, "", "error type name equals the enum name", nil))
		}
	}
	for _, d := range s.Derive {
		cp := schema.Capability(d)
		switch {
		case !cp.Valid():
			errs = append(errs, schemaErr(s, "", fmt.Sprintf("unknown capability %q", d), nil))
		case !slices.Contains(typ.Derive, cp):
			typ.Derive = append(typ.Derive, cp)
		}
	}
	if len(s.Variants) == 0 {
		errs = append(errs, schemaErr(s, "", "enum must declare at least one variant", nil))
	}
	if err := typ.addVariants(s.Variants); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	values := make([]string, len(typ.Variants))
	for i, v := range typ.Variants {
		values[i] = v.Value
	}
	tbl, err := BuildTable(values)
	if err != nil {
		return nil, schemaErr(s, "", "", err)
	}
	typ.Table = tbl
	return typ, nil
}

// addVariants validates the variants, assigns discriminants and resolves
// the lookup literals of every variant.
func (t *Type) addVariants(vs []*load.Variant) error {
	var (
		errs      []error
		names     = make(map[string]bool, len(vs))
		values    = make(map[string]string, len(vs))
		discs     = make(map[int64]string, len(vs))
		claimed   = make(map[string]string)
		decls     = make([]*load.Variant, 0, len(vs))
		next      int64
		overflow  bool
		rng, repr = reprRange[t.Repr]
		strict, _ = t.FeatureEnabled(FeatureStrictAliases.Name)
	)
	for _, lv := range vs {
		if lv.Value == "" {
			errs = append(errs, schemaErr(t.schema, lv.Name, "canonical string cannot be empty", schema.ErrEmptyValue))
			continue
		}
		if prev, ok := values[lv.Value]; ok {
			errs = append(errs, schemaErr(t.schema, lv.Name, fmt.Sprintf("canonical string %q is already used by variant %s", lv.Value, prev), nil))
			continue
		}
		if !utf8.ValidString(lv.Value) {
			errs = append(errs, schemaErr(t.schema, lv.Name, "canonical string is not valid UTF-8", nil))
			continue
		}
		if strings.ContainsRune(lv.Value, Separator) {
			errs = append(errs, schemaErr(t.schema, lv.Name, fmt.Sprintf("canonical string %q contains the table separator %q", lv.Value, Separator), nil))
			continue
		}
		v := &Variant{Name: lv.Name, Value: lv.Value, Index: len(t.Variants)}
		if v.Name == "" {
			v.Name = schema.VariantName(lv.Value)
		}
		v.Const = t.Prefix + v.Name
		switch {
		case v.Name == "":
			errs = append(errs, schemaErr(t.schema, lv.Value, "cannot derive a variant name from the canonical string", nil))
			continue
		case names[v.Name]:
			errs = append(errs, schemaErr(t.schema, v.Name, "duplicate variant name", nil))
			continue
		case !token.IsIdentifier(v.Const) || token.Lookup(v.Const).IsKeyword():
			errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("constant name %q is not a valid Go identifier", v.Const), nil))
			continue
		case Reserved(v.Const):
			errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("constant name %q shadows an identifier used by the generated code", v.Const), nil))
			continue
		}
		names[v.Name] = true
		values[v.Value] = v.Name

		// Discriminants.
		switch {
		case lv.Discriminant != nil && !repr:
			errs = append(errs, schemaErr(t.schema, v.Name, "discriminant requires a repr type", nil))
			continue
		case lv.Discriminant != nil:
			v.Discriminant = *lv.Discriminant
		case overflow:
			errs = append(errs, schemaErr(t.schema, v.Name, "implicit discriminant overflows repr "+t.Repr, nil))
			continue
		default:
			v.Discriminant = next
		}
		if repr && (v.Discriminant < rng.min || v.Discriminant > rng.max) {
			errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("discriminant %d out of range for %s", v.Discriminant, t.Repr), nil))
			continue
		}
		if prev, ok := discs[v.Discriminant]; ok {
			errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("discriminant %d is already used by variant %s", v.Discriminant, prev), nil))
			continue
		}
		discs[v.Discriminant] = v.Name
		overflow = v.Discriminant == math.MaxInt64 || (repr && v.Discriminant == rng.max)
		next = v.Discriminant + 1
		t.Variants = append(t.Variants, v)
		decls = append(decls, lv)
	}
	// Aliases are resolved once all canonical strings are known.
	for i, v := range t.Variants {
		v.Literals = append(v.Literals, v.Value)
		for _, a := range decls[i].Aliases {
			switch owner, isValue := values[a]; {
			case a == "":
				errs = append(errs, schemaErr(t.schema, v.Name, "alias cannot be empty", schema.ErrEmptyAlias))
			case !utf8.ValidString(a):
				errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("alias %q is not valid UTF-8", a), nil))
			case a == v.Value || slices.Contains(v.Aliases, a):
			case isValue:
				errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("alias %q is the canonical string of variant %s", a, owner), nil))
			default:
				v.Aliases = append(v.Aliases, a)
				if first, ok := claimed[a]; ok {
					if strict {
						errs = append(errs, schemaErr(t.schema, v.Name, fmt.Sprintf("alias %q is already declared by variant %s", a, first), nil))
					}
					continue
				}
				claimed[a] = v.Name
				v.Literals = append(v.Literals, a)
			}
		}
	}
	return errors.Join(errs...)
}

func schemaErr(s *load.Schema, variant, msg string, cause error) *SchemaError {
	err := NewSchemaError(s.Name, variant, msg, cause)
	err.Pos = s.Pos
	return err
}

// Schema returns the loaded schema the type was created from.
func (t Type) Schema() *load.Schema { return t.schema }

// Receiver returns the receiver name of this type.
func (t Type) Receiver() string { return "v" }

// HasRepr reports if the type declares a representation type.
func (t Type) HasRepr() bool { return t.Repr != "" }

// HasErrorType reports if a lookup error type is generated.
func (t Type) HasErrorType() bool { return t.ErrorType != "" }

// HasCap reports if the given capability was requested.
func (t Type) HasCap(c schema.Capability) bool { return slices.Contains(t.Derive, c) }

// NumVariants returns the number of variants.
func (t Type) NumVariants() int { return len(t.Variants) }

// Underlying returns the underlying Go type of the enum.
func (t Type) Underlying() string {
	if t.Repr != "" {
		return t.Repr
	}
	switch n := len(t.Variants); {
	case n <= math.MaxUint8+1:
		return "uint8"
	case n <= math.MaxUint16+1:
		return "uint16"
	default:
		return "uint32"
	}
}

// Signed reports if the underlying type is a signed integer.
func (t Type) Signed() bool { return strings.HasPrefix(t.Underlying(), "int") }

// Dense reports if the discriminants are exactly the declaration indexes,
// in which case a value is its own index.
func (t Type) Dense() bool {
	for i, v := range t.Variants {
		if v.Discriminant != int64(i) {
			return false
		}
	}
	return true
}

// Pos returns the source position of the schema, if known.
func (t Type) Pos() string {
	if t.schema == nil {
		return ""
	}
	return t.schema.Pos
}

// FileName returns the name of the generated file.
func (t Type) FileName() string { return Snake(t.Name) + ".go" }

// NumVariantsName returns the name of the variant count constant.
func (t Type) NumVariantsName() string { return t.Name + "NumVariants" }

// ValueTableName returns the name of the value table constant.
func (t Type) ValueTableName() string { return t.Name + "ValueTable" }

// ParseDiagnosticName returns the name of the parse diagnostic constant.
func (t Type) ParseDiagnosticName() string { return t.Name + "ParseDiagnostic" }

// ExpectedName returns the name of the serialization diagnostic constant.
func (t Type) ExpectedName() string { return t.Name + "Expected" }

// ValuesVar returns the name of the unexported values array.
func (t Type) ValuesVar() string { return "_" + t.Name + "Values" }

// VariantsVar returns the name of the unexported variants array.
func (t Type) VariantsVar() string { return "_" + t.Name + "Variants" }

// NamesVar returns the name of the unexported variant names array.
func (t Type) NamesVar() string { return "_" + t.Name + "Names" }

// DescriptorVar returns the name of the unexported descriptor variable.
func (t Type) DescriptorVar() string { return "_" + t.Name + "Descriptor" }

// DecodeFunc returns the name of the unexported decoding helper shared by
// the serialization adapters.
func (t Type) DecodeFunc() string { return "decode" + t.Name }

// LookupFunc returns the name of the lookup function.
func (t Type) LookupFunc() string { return "Lookup" + t.Name }

// ParseFunc returns the name of the parse function.
func (t Type) ParseFunc() string { return "Parse" + t.Name }

// ParseBytesFunc returns the name of the byte-slice parse function.
func (t Type) ParseBytesFunc() string { return "Parse" + t.Name + "Bytes" }

// VariantsFunc returns the name of the function listing all variants.
func (t Type) VariantsFunc() string { return t.Name + "Variants" }

// ValuesFunc returns the name of the function listing all values.
func (t Type) ValuesFunc() string { return t.Name + "Values" }

// VariantNamesFunc returns the name of the function listing all variant names.
func (t Type) VariantNamesFunc() string { return t.Name + "VariantNames" }

// AllFunc returns the name of the iterator function.
func (t Type) AllFunc() string { return t.Name + "All" }

// Identifiers returns the package-level identifiers declared by the
// generated file of this type.
func (t Type) Identifiers() []string {
	ids := []string{
		t.Name,
		t.NumVariantsName(),
		t.ValueTableName(),
		t.ValuesVar(),
		t.VariantsVar(),
		t.LookupFunc(),
		t.VariantsFunc(),
		t.ValuesFunc(),
	}
	if t.HasErrorType() {
		ids = append(ids, t.ErrorType, t.ParseDiagnosticName(), t.ParseFunc(), t.ParseBytesFunc())
	}
	if t.SerialEnabled() {
		ids = append(ids, t.ExpectedName(), t.DecodeFunc())
	}
	if enabled, _ := t.FeatureEnabled(FeatureReflect.Name); enabled {
		ids = append(ids, t.NamesVar(), t.DescriptorVar(), t.VariantNamesFunc(), t.AllFunc())
	}
	for _, v := range t.Variants {
		ids = append(ids, v.Const)
	}
	return ids
}

// DiscriminantLit returns the Go literal of the variant discriminant.
func (v Variant) DiscriminantLit() string {
	return strconv.FormatInt(v.Discriminant, 10)
}

// reservedNames holds the package names imported by generated files and
// the receivers, parameters and locals of the generated functions.
var reservedNames = map[string]bool{
	// Imports.
	"cmp": true, "driver": true, "fmt": true, "graphql": true, "hash": true,
	"io": true, "iter": true, "json": true, "maphash": true, "msgpack": true,
	"strconv": true, "strenum": true, "strings": true, "yaml": true,
	// Receivers, parameters and locals.
	"_": true, "b": true, "dec": true, "enc": true, "err": true, "h": true,
	"i": true, "n": true, "o": true, "ok": true, "p": true, "s": true,
	"seed": true, "src": true, "v": true, "w": true, "yield": true,
}

// Reserved reports whether name cannot be declared at package level by a
// generated file: it is imported or used as a local by the generated code,
// or it is a predeclared Go identifier.
func Reserved(name string) bool {
	return reservedNames[name] || types.Universe.Lookup(name) != nil
}

// ValidSchemaName will determine if a name is usable as the name of a
// generated exported type.
func ValidSchemaName(name string) error {
	switch {
	case name == "":
		return errors.New("name cannot be empty")
	case !token.IsIdentifier(name):
		return fmt.Errorf("name %q is not a valid Go identifier", name)
	case !token.IsExported(name):
		return fmt.Errorf("name %q must be exported", name)
	}
	return nil
}
