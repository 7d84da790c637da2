// Package schema provides fluent builders for declaring string enums.
//
// An enum is a closed set of named variants. Each variant has exactly one
// canonical string, returned by the generated String method, and any number
// of aliases accepted only on lookup:
//
//	schema.Enum("MyEnum").
//	    ErrorType("MyError").
//	    Derive(schema.Eq, schema.Ord, schema.Debug).
//	    Variants(
//	        schema.Variant("Variant1", "Variant1").Aliases("variant1"),
//	        schema.Variant("Variant2", "Variant2"),
//	    )
//
// For simple enums, names can be derived from the values:
//
//	schema.Enum("Status").Values("pending", "in_progress", "done")
//	// Variants: Pending, InProgress, Done
//
// # Representation
//
// Explicit discriminants require a representation type:
//
//	schema.Enum("Level").
//	    Repr(schema.ReprInt8).
//	    Variants(
//	        schema.Variant("Debug", "debug").Discriminant(-4),
//	        schema.Variant("Info", "info"), // -3
//	    )
//
// Builders never fail; the first error is recorded on the Descriptor and
// reported when the descriptor is loaded.
package schema
