package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capability is a structural capability attached to the generated type.
type Capability string

// Capabilities accepted by Derive.
const (
	Eq    Capability = "eq"
	Ord   Capability = "ord"
	Copy  Capability = "copy"
	Debug Capability = "debug"
)

// Capabilities holds all known capabilities.
var Capabilities = []Capability{Eq, Ord, Copy, Debug}

// Valid reports if c is a known capability.
func (c Capability) Valid() bool {
	for _, k := range Capabilities {
		if c == k {
			return true
		}
	}
	return false
}

// Repr is the integer representation type of an enum with discriminants.
type Repr string

// Supported representation types.
const (
	ReprInt    Repr = "int"
	ReprInt8   Repr = "int8"
	ReprInt16  Repr = "int16"
	ReprInt32  Repr = "int32"
	ReprInt64  Repr = "int64"
	ReprUint   Repr = "uint"
	ReprUint8  Repr = "uint8"
	ReprUint16 Repr = "uint16"
	ReprUint32 Repr = "uint32"
	ReprUint64 Repr = "uint64"
)

// Descriptor holds the configuration of an enum.
type Descriptor struct {
	Name      string
	Comment   string
	Prefix    *string
	ErrorType string
	Repr      Repr
	Derive    []Capability
	Variants  []*VariantDescriptor
	Err       error
}

// VariantDescriptor holds the configuration of one variant.
type VariantDescriptor struct {
	Name         string
	Value        string
	Aliases      []string
	Discriminant *int64
}

// EnumBuilder is the builder for enums.
type EnumBuilder struct {
	desc *Descriptor
}

// Enum returns a new enum builder with the given type name.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{desc: &Descriptor{Name: name}}
}

// Comment sets the doc comment of the generated type.
func (b *EnumBuilder) Comment(c string) *EnumBuilder {
	b.desc.Comment = c
	return b
}

// Prefix sets the prefix of the variant constants. It defaults to the type
// name. An empty prefix uses the bare variant names.
func (b *EnumBuilder) Prefix(p string) *EnumBuilder {
	b.desc.Prefix = &p
	return b
}

// ErrorType opts in to the generation of a lookup error type with the
// given name, and of the Parse functions returning it.
func (b *EnumBuilder) ErrorType(name string) *EnumBuilder {
	b.desc.ErrorType = name
	return b
}

// Repr sets the integer representation type.
func (b *EnumBuilder) Repr(r Repr) *EnumBuilder {
	b.desc.Repr = r
	return b
}

// Derive attaches structural capabilities to the generated type.
func (b *EnumBuilder) Derive(caps ...Capability) *EnumBuilder {
	for _, c := range caps {
		if !c.Valid() {
			b.setErr(fmt.Errorf("enum %q: unknown capability %q", b.desc.Name, c))
			continue
		}
		b.desc.Derive = append(b.desc.Derive, c)
	}
	return b
}

// Variants appends the given variants in declaration order.
func (b *EnumBuilder) Variants(vs ...*VariantBuilder) *EnumBuilder {
	for _, v := range vs {
		if v.err != nil {
			b.setErr(fmt.Errorf("enum %q: %w", b.desc.Name, v.err))
		}
		b.desc.Variants = append(b.desc.Variants, v.desc)
	}
	return b
}

// Values appends one variant per value. Variant names are derived from the
// values: "in_progress" becomes InProgress.
func (b *EnumBuilder) Values(values ...string) *EnumBuilder {
	for _, v := range values {
		b.Variants(Variant(VariantName(v), v))
	}
	return b
}

// NamedValues appends variants from (name, value) pairs.
func (b *EnumBuilder) NamedValues(namevalue ...string) *EnumBuilder {
	if len(namevalue)%2 == 1 {
		b.setErr(fmt.Errorf("enum %q: odd argument count in NamedValues", b.desc.Name))
		return b
	}
	for i := 0; i < len(namevalue); i += 2 {
		b.Variants(Variant(namevalue[i], namevalue[i+1]))
	}
	return b
}

// Descriptor returns the enum descriptor.
func (b *EnumBuilder) Descriptor() *Descriptor {
	return b.desc
}

func (b *EnumBuilder) setErr(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}

// VariantBuilder is the builder for enum variants.
type VariantBuilder struct {
	desc *VariantDescriptor
	err  error
}

// Variant returns a new variant builder with the given name and canonical
// string.
func Variant(name, value string) *VariantBuilder {
	b := &VariantBuilder{desc: &VariantDescriptor{Name: name, Value: value}}
	if value == "" {
		b.err = fmt.Errorf("variant %q: %w", name, ErrEmptyValue)
	}
	return b
}

// Aliases appends alternate spellings accepted on lookup.
func (b *VariantBuilder) Aliases(aliases ...string) *VariantBuilder {
	for _, a := range aliases {
		if a == "" && b.err == nil {
			b.err = fmt.Errorf("variant %q: %w", b.desc.Name, ErrEmptyAlias)
			continue
		}
		b.desc.Aliases = append(b.desc.Aliases, a)
	}
	return b
}

// Discriminant sets an explicit integer value for the variant.
func (b *VariantBuilder) Discriminant(d int64) *VariantBuilder {
	b.desc.Discriminant = &d
	return b
}

// Descriptor returns the variant descriptor.
func (b *VariantBuilder) Descriptor() *VariantDescriptor {
	return b.desc
}

var (
	// ErrEmptyValue is recorded for variants with an empty canonical string.
	ErrEmptyValue = errors.New("canonical string cannot be empty")
	// ErrEmptyAlias is recorded for empty aliases.
	ErrEmptyAlias = errors.New("alias cannot be empty")
)

// VariantName derives a Go identifier from a canonical string by
// title-casing its alphanumeric words: "dark-blue" becomes DarkBlue.
// Names that would start with a digit are prefixed with "V".
func VariantName(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// A Caser is stateful; one per call.
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	name := b.String()
	if name == "" {
		return ""
	}
	if unicode.IsDigit([]rune(name)[0]) {
		name = "V" + name
	}
	return name
}
