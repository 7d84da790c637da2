package strenum

import (
	"fmt"
	"slices"
	"strings"
)

// Enum is the reflection protocol implemented by generated enums when the
// reflect feature is enabled.
type Enum interface {
	fmt.Stringer
	// VariantName returns the declared name of the variant.
	VariantName() string
	// Discriminant returns the integer identity of the variant.
	Discriminant() int64
	// EnumDescriptor returns the shared, immutable descriptor of the enum.
	EnumDescriptor() *Descriptor
}

// VariantDescriptor describes one variant of a generated enum.
type VariantDescriptor struct {
	Name         string
	Value        string
	Aliases      []string
	Discriminant int64
}

// Descriptor describes a generated enum. It is built once at package
// initialization and never mutated afterwards.
type Descriptor struct {
	name     string
	table    string
	variants []VariantDescriptor
	lookup   map[string]int
}

// NewDescriptor returns a descriptor for the enum with the given name,
// value table and variants (in declaration order). Lookup keys follow the
// same precedence as the generated lookup function: the first variant
// declaring a string wins.
func NewDescriptor(name, table string, variants ...VariantDescriptor) *Descriptor {
	d := &Descriptor{
		name:     name,
		table:    table,
		variants: variants,
		lookup:   make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if _, ok := d.lookup[v.Value]; !ok {
			d.lookup[v.Value] = i
		}
		for _, a := range v.Aliases {
			if _, ok := d.lookup[a]; !ok {
				d.lookup[a] = i
			}
		}
	}
	return d
}

// Name returns the type name of the enum.
func (d *Descriptor) Name() string {
	return d.name
}

// NumVariants returns the number of variants.
func (d *Descriptor) NumVariants() int {
	return len(d.variants)
}

// Variant returns the variant at index i (declaration order).
func (d *Descriptor) Variant(i int) VariantDescriptor {
	v := d.variants[i]
	v.Aliases = slices.Clone(v.Aliases)
	return v
}

// Names returns the declared variant names in declaration order.
func (d *Descriptor) Names() []string {
	names := make([]string, len(d.variants))
	for i, v := range d.variants {
		names[i] = v.Name
	}
	return names
}

// Values returns the canonical strings in declaration order.
func (d *Descriptor) Values() []string {
	values := make([]string, len(d.variants))
	for i, v := range d.variants {
		values[i] = v.Value
	}
	return values
}

// Lookup returns the index of the variant whose canonical string or alias
// equals s.
func (d *Descriptor) Lookup(s string) (int, bool) {
	i, ok := d.lookup[s]
	return i, ok
}

// ValueTable returns the comma separated canonical strings.
func (d *Descriptor) ValueTable() string {
	return d.table
}

// String returns the type name and its value table.
func (d *Descriptor) String() string {
	var b strings.Builder
	b.Grow(len(d.name) + len(d.table) + 2)
	b.WriteString(d.name)
	b.WriteByte('[')
	b.WriteString(d.table)
	b.WriteByte(']')
	return b.String()
}
