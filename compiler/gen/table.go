package gen

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Diagnostic wrapping text. The parse and serialization diagnostics are
// derived from the same value table with different prefixes.
const (
	// Separator joins canonical strings in the value table.
	Separator = ','
	// ParsePrefix starts the diagnostic of a failed parse.
	ParsePrefix = "expected one of ["
	// SerialPrefix starts the diagnostic of a failed decode.
	SerialPrefix = "one of ["
	// DiagnosticSuffix ends both diagnostics.
	DiagnosticSuffix = "]"
)

// ErrEmptyTable is returned when building a value table without values.
var ErrEmptyTable = errors.New("strenum: value table requires at least one value")

// Table is the value table of an enum: all canonical strings in
// declaration order, joined by Separator.
type Table struct {
	// Value holds the joined table.
	Value string
	// Offsets holds the start offset of every value in Value.
	Offsets []int
}

// BuildTable builds the value table from the given canonical strings.
// The length of the table is computed before the single allocation.
// Callers must pass valid UTF-8 strings. A table that fails the UTF-8
// check afterwards is a generator defect and BuildTable panics with an
// *InternalError.
func BuildTable(values []string) (*Table, error) {
	if len(values) == 0 {
		return nil, ErrEmptyTable
	}
	n := len(values) - 1
	for _, v := range values {
		n += len(v)
	}
	var b strings.Builder
	b.Grow(n)
	offsets := make([]int, len(values))
	for i, v := range values {
		if i > 0 {
			b.WriteByte(Separator)
		}
		offsets[i] = b.Len()
		b.WriteString(v)
	}
	table := b.String()
	if len(table) != n || !utf8.ValidString(table) {
		panic(&InternalError{Op: "BuildTable", Message: "value table is malformed"})
	}
	return &Table{Value: table, Offsets: offsets}, nil
}

// Len returns the number of values in the table.
func (t *Table) Len() int {
	return len(t.Offsets)
}

// Span returns the byte range of the i-th value.
func (t *Table) Span(i int) (start, end int) {
	start = t.Offsets[i]
	if i+1 < len(t.Offsets) {
		return start, t.Offsets[i+1] - 1
	}
	return start, len(t.Value)
}

// At returns the i-th value.
func (t *Table) At(i int) string {
	start, end := t.Span(i)
	return t.Value[start:end]
}

// Values returns the decomposition of the table, in order.
func (t *Table) Values() []string {
	vs := make([]string, t.Len())
	for i := range vs {
		vs[i] = t.At(i)
	}
	return vs
}

// ParseDiagnostic returns the parse-failure diagnostic of the table.
func (t *Table) ParseDiagnostic() string {
	return Diagnostic(ParsePrefix, t.Value, DiagnosticSuffix)
}

// SerialDiagnostic returns the serialization-failure diagnostic of the table.
func (t *Table) SerialDiagnostic() string {
	return Diagnostic(SerialPrefix, t.Value, DiagnosticSuffix)
}

// Diagnostic returns prefix + table + suffix, allocated once.
func Diagnostic(prefix, table, suffix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(table) + len(suffix))
	b.WriteString(prefix)
	b.WriteString(table)
	b.WriteString(suffix)
	return b.String()
}
