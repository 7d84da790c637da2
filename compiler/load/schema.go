// Package load loads enum schemas from schema builders and schema files
// into the serializable form consumed by the code generator.
package load

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/strenum/schema"
)

// Schema represents one enum definition loaded from a builder or a file.
type Schema struct {
	Name      string     `json:"name" yaml:"name" msgpack:"name"`
	Pos       string     `json:"-" yaml:"-" msgpack:"-"`
	Comment   string     `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Prefix    *string    `json:"prefix,omitempty" yaml:"prefix,omitempty" msgpack:"prefix,omitempty"`
	ErrorType string     `json:"error_type,omitempty" yaml:"error_type,omitempty" msgpack:"error_type,omitempty"`
	Repr      string     `json:"repr,omitempty" yaml:"repr,omitempty" msgpack:"repr,omitempty"`
	Derive    []string   `json:"derive,omitempty" yaml:"derive,omitempty" msgpack:"derive,omitempty"`
	Variants  []*Variant `json:"variants" yaml:"variants" msgpack:"variants"`
}

// Variant represents one enum variant.
type Variant struct {
	Name         string   `json:"name" yaml:"name" msgpack:"name"`
	Value        string   `json:"value" yaml:"value" msgpack:"value"`
	Aliases      []string `json:"aliases,omitempty" yaml:"aliases,omitempty" msgpack:"aliases,omitempty"`
	Discriminant *int64   `json:"discriminant,omitempty" yaml:"discriminant,omitempty" msgpack:"discriminant,omitempty"`
}

// NewSchema creates a loaded schema from an enum descriptor.
// It returns an error if the descriptor contains an error.
func NewSchema(d *schema.Descriptor) (*Schema, error) {
	if d.Err != nil {
		return nil, fmt.Errorf("schema %q: %w", d.Name, d.Err)
	}
	s := &Schema{
		Name:      d.Name,
		Comment:   d.Comment,
		Prefix:    d.Prefix,
		ErrorType: d.ErrorType,
		Repr:      string(d.Repr),
		Variants:  make([]*Variant, 0, len(d.Variants)),
	}
	for _, c := range d.Derive {
		s.Derive = append(s.Derive, string(c))
	}
	for _, v := range d.Variants {
		s.Variants = append(s.Variants, &Variant{
			Name:         v.Name,
			Value:        v.Value,
			Aliases:      v.Aliases,
			Discriminant: v.Discriminant,
		})
	}
	return s, nil
}

// MarshalSchema encodes the loaded schemas into a compact snapshot.
// Two schema sets are equivalent for the generator iff their snapshots
// are byte-equal.
func MarshalSchema(schemas ...*Schema) ([]byte, error) {
	return msgpack.Marshal(schemas)
}

// UnmarshalSchema decodes a snapshot created by MarshalSchema.
func UnmarshalSchema(buf []byte) ([]*Schema, error) {
	var schemas []*Schema
	if err := msgpack.Unmarshal(buf, &schemas); err != nil {
		return nil, fmt.Errorf("decode schema snapshot: %w", err)
	}
	return schemas, nil
}
