// Package gen provides code generation for strenum schemas.
//
// This package turns loaded enum schemas into Go source files. Each enum
// becomes one file holding the integer-backed type, its constants, the
// packed value table, and the adapters enabled by feature flags.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema Definition (enums.yaml / enums.json / enums.msgpack)
//	        ↓
//	   load.Schema (decoded descriptors)
//	        ↓
//	   Graph (validated Types with value tables)
//	        ↓
//	   Dialect (language-specific code, see package golang)
//	        ↓
//	   Generated code ({enum}.go)
//
// # Key Types
//
//   - Graph: Holds all Type definitions with validation
//   - Type: One enum with its variants, representation and value table
//   - Table: The comma-joined canonical strings and their byte spans
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
//	Dialect
//	├── Name() string
//	└── EnumGenerator
//	    └── GenEnum
//
// GeneratorHelper is what a dialect sees of the JenniferGenerator.
//
// # Error Handling
//
//   - SchemaError: Invalid enum or variant declarations
//   - ConfigError: Invalid options
//   - GenerationError: Rendering or writing failures
//   - InternalError: Broken generator invariants
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, schemas...)
//	if err != nil {
//	    if gen.IsSchemaError(err) {
//	        // Report the offending enum and variant.
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./internal/status"),
//	    gen.WithFeatures(gen.FeatureJSON, gen.FeatureSQL),
//	    gen.WithHeader("// Code generated by strenum, DO NOT EDIT."),
//	)
//
// Package defaults to the base name of the target directory.
//
// # Features
//
//   - text: encoding.TextMarshaler and TextUnmarshaler
//   - json: json.Marshaler and json.Unmarshaler
//   - yaml: yaml.Marshaler and yaml.Unmarshaler (gopkg.in/yaml.v3)
//   - msgpack: msgpack.CustomEncoder and CustomDecoder
//   - sql: driver.Valuer and sql.Scanner
//   - gql: graphql.Marshaler and graphql.Unmarshaler
//   - reflect: strenum.Enum with a shared Descriptor
//   - strictaliases: reject aliases shadowed by an earlier variant
package gen
