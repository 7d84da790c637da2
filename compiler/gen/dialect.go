package gen

import (
	"log/slog"

	"github.com/dave/jennifer/jen"
)

// EnumGenerator generates the file of one enum type.
type EnumGenerator interface {
	// GenEnum generates the file holding the type, its constants and all
	// enabled adapters ({enum}.go).
	GenEnum(t *Type) *jen.File
}

// Dialect is the interface an output language implements to be driven
// by the JenniferGenerator.
type Dialect interface {
	EnumGenerator

	// Name returns the dialect name.
	Name() string
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// Graph returns the enum graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// RuntimePkg returns the import path of the strenum runtime package.
	RuntimePkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool

	// Logger returns the generation logger.
	Logger() *slog.Logger
}
