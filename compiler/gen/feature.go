package gen

import "fmt"

var (
	// FeatureText provides a feature-flag for the encoding.TextMarshaler and
	// encoding.TextUnmarshaler adapters.
	FeatureText = Feature{
		Name:        "text",
		Stage:       Stable,
		Default:     true,
		Description: "Generates MarshalText and UnmarshalText methods",
	}

	// FeatureJSON provides a feature-flag for the json.Marshaler and
	// json.Unmarshaler adapters.
	FeatureJSON = Feature{
		Name:        "json",
		Stage:       Stable,
		Default:     true,
		Description: "Generates MarshalJSON and UnmarshalJSON methods encoding the canonical string",
	}

	// FeatureYAML provides a feature-flag for the gopkg.in/yaml.v3 adapters.
	FeatureYAML = Feature{
		Name:        "yaml",
		Stage:       Beta,
		Default:     false,
		Description: "Generates MarshalYAML and UnmarshalYAML methods for gopkg.in/yaml.v3",
	}

	// FeatureMsgpack provides a feature-flag for the msgpack adapters.
	FeatureMsgpack = Feature{
		Name:        "msgpack",
		Stage:       Beta,
		Default:     false,
		Description: "Generates EncodeMsgpack and DecodeMsgpack methods for github.com/vmihailenco/msgpack/v5",
	}

	// FeatureSQL provides a feature-flag for the database/sql adapters.
	FeatureSQL = Feature{
		Name:        "sql",
		Stage:       Stable,
		Default:     false,
		Description: "Generates driver.Valuer and sql.Scanner methods storing the canonical string",
	}

	// FeatureGQL provides a feature-flag for the gqlgen marshaler adapters.
	FeatureGQL = Feature{
		Name:        "gql",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates MarshalGQL and UnmarshalGQL methods for gqlgen enum scalars",
	}

	// FeatureReflect provides a feature-flag for the reflection adapter that
	// implements strenum.Enum.
	FeatureReflect = Feature{
		Name:        "reflect",
		Stage:       Beta,
		Default:     true,
		Description: "Generates variant names, discriminants, iteration and a strenum.Descriptor",
	}

	// FeatureStrictAliases rejects schemas where one alias is declared by
	// more than one variant, instead of resolving it to the first declaration.
	FeatureStrictAliases = Feature{
		Name:        "strictaliases",
		Stage:       Experimental,
		Default:     false,
		Description: "Rejects aliases that are declared by more than one variant",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureText,
		FeatureJSON,
		FeatureYAML,
		FeatureMsgpack,
		FeatureSQL,
		FeatureGQL,
		FeatureReflect,
		FeatureStrictAliases,
	}

	// serialFeatures are the features that emit serialization adapters.
	serialFeatures = []Feature{
		FeatureText,
		FeatureJSON,
		FeatureYAML,
		FeatureMsgpack,
		FeatureSQL,
		FeatureGQL,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are complete, but we expect breaking-changes to their
	// generated APIs.
	Alpha

	// Beta features are Alpha features that are documented and no
	// breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("FeatureStage(%d)", int(s))
	}
}

// A Feature of the strenum codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature registered with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// DefaultFeatures returns the features that are enabled by default.
func DefaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}
