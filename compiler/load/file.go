package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a schema file.
type Format int

// Supported schema file formats.
const (
	FormatYAML Format = iota + 1
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrEmptyFile is returned for schema files without a document.
var ErrEmptyFile = errors.New("load: empty schema file")

// File is a schema file holding one or more enums that are generated into
// the same Go package.
type File struct {
	// Package is the name of the generated Go package.
	Package string `json:"package" yaml:"package"`
	// Features lists generator feature names enabled for this file.
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
	// Enums holds the enum schemas in file order.
	Enums []*Schema `json:"enums" yaml:"enums"`
	// Path of the file this schema was loaded from.
	Path string `json:"-" yaml:"-"`
}

// FormatOf returns the schema format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("load: unsupported schema file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads and decodes the schema file at path.
func LoadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read schema file: %w", err)
	}
	f, err := Parse(path, data, format)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse decodes a schema file from data. The name is used for positions
// in error messages. Unknown keys are rejected.
func Parse(name string, data []byte, format Format) (*File, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatYAML:
		f, err = parseYAML(name, data)
	case FormatJSON:
		f, err = parseJSON(name, data)
	default:
		return nil, fmt.Errorf("load: unsupported format %s", format)
	}
	if err != nil {
		return nil, err
	}
	for i, s := range f.Enums {
		if s == nil {
			return nil, fmt.Errorf("load: %s: enum #%d is empty", name, i)
		}
		for j, v := range s.Variants {
			if v == nil {
				return nil, fmt.Errorf("load: %s: enum %q: variant #%d is empty", name, s.Name, j)
			}
		}
	}
	return f, nil
}

func parseYAML(name string, data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
		}
		return nil, fmt.Errorf("load: decode %s: %w", name, err)
	}
	// Second pass over the node tree for enum positions.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil {
		if seq := mappingValue(&root, "enums"); seq != nil && seq.Kind == yaml.SequenceNode {
			for i, n := range seq.Content {
				if i < len(f.Enums) && f.Enums[i] != nil {
					f.Enums[i].Pos = fmt.Sprintf("%s:%d", name, n.Line)
				}
			}
		}
	}
	return f, nil
}

// mappingValue returns the value node of key in the top-level mapping.
func mappingValue(root *yaml.Node, key string) *yaml.Node {
	n := root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func parseJSON(name string, data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	f := &File{}
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("load: decode %s: %w", name, err)
	}
	for i, s := range f.Enums {
		if s != nil {
			s.Pos = fmt.Sprintf("%s:enums[%d]", name, i)
		}
	}
	return f, nil
}
