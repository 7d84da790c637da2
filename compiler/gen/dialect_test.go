package gen

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Interface Compliance Tests
// =============================================================================

// mockEnumGenerator implements EnumGenerator for testing.
type mockEnumGenerator struct{}

func (m *mockEnumGenerator) GenEnum(_ *Type) *jen.File { return jen.NewFile("mock") }

// mockDialect implements Dialect for testing.
type mockDialect struct {
	mockEnumGenerator
}

func (m *mockDialect) Name() string { return "mock" }

var (
	_ EnumGenerator   = (*mockEnumGenerator)(nil)
	_ Dialect         = (*mockDialect)(nil)
	_ GeneratorHelper = (*JenniferGenerator)(nil)
)

func TestDialect_Embedding(t *testing.T) {
	var d Dialect = &mockDialect{}
	assert.Equal(t, "mock", d.Name())
	f := d.GenEnum(&Type{Name: "Color"})
	assert.NotNil(t, f)

	var eg EnumGenerator = d
	assert.NotNil(t, eg.GenEnum(&Type{Name: "Color"}))
}
