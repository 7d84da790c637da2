// Package strenum is the runtime support package for enumerations generated
// by the strenum compiler.
//
// Generated code imports this package for the few pieces that are shared
// between all enums:
//
//   - UTF8Error: input bytes that are not valid UTF-8.
//   - ValueError: a decoded string that names no variant (serialization).
//   - Enum and Descriptor: the reflection protocol.
//   - Map: a map keyed by enum values that can also be queried with the
//     canonical string of a variant.
//
// # Defining enums
//
// Enums are declared with the schema package or in a YAML/JSON schema file:
//
//	package: sample
//	enums:
//	  - name: MyEnum
//	    error_type: MyError
//	    derive: [eq, ord, debug]
//	    variants:
//	      - {name: Variant1, value: Variant1, aliases: [variant1]}
//	      - {name: Variant2, value: Variant2}
//
// and generated with:
//
//	strenum generate -f enums.yaml -o ./sample
//
// See the compiler/gen package for the generated API.
package strenum
