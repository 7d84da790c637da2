package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "Single", values: []string{"a"}, want: "a"},
		{name: "Two", values: []string{"Variant1", "Variant2"}, want: "Variant1,Variant2"},
		{name: "Unicode", values: []string{"héllo", "世界", "x"}, want: "héllo,世界,x"},
		{name: "Whitespace", values: []string{" a", "b "}, want: " a,b "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := BuildTable(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.Value)

			n := len(tt.values) - 1
			for _, v := range tt.values {
				n += len(v)
			}
			assert.Len(t, tbl.Value, n)
			assert.Equal(t, len(tt.values), tbl.Len())
			assert.Equal(t, tt.values, tbl.Values())
			assert.Equal(t, strings.Split(tbl.Value, ","), tbl.Values())
			for i, v := range tt.values {
				start, end := tbl.Span(i)
				assert.Equal(t, v, tbl.Value[start:end])
				assert.Equal(t, v, tbl.At(i))
			}
		})
	}
}

func TestBuildTableAllocs(t *testing.T) {
	values := []string{"debug", "info", "warn", "error"}
	// The table bytes, the offsets and the Table itself.
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = BuildTable(values)
	})
	assert.LessOrEqual(t, allocs, 3.0)

	allocs = testing.AllocsPerRun(100, func() {
		_ = Diagnostic(ParsePrefix, "debug,info,warn,error", DiagnosticSuffix)
	})
	assert.LessOrEqual(t, allocs, 1.0)
}

func TestBuildTableEmpty(t *testing.T) {
	_, err := BuildTable(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestBuildTableInvalidUTF8(t *testing.T) {
	assert.PanicsWithError(t, "strenum: internal error in BuildTable: value table is malformed", func() {
		_, _ = BuildTable([]string{"a", "\xff"})
	})
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInternal)
	}()
	_, _ = BuildTable([]string{"\xc3"})
}

func TestDiagnostic(t *testing.T) {
	tbl, err := BuildTable([]string{"Variant1", "Variant2"})
	require.NoError(t, err)
	assert.Equal(t, "expected one of [Variant1,Variant2]", tbl.ParseDiagnostic())
	assert.Equal(t, "one of [Variant1,Variant2]", tbl.SerialDiagnostic())
	assert.Equal(t, "<a>", Diagnostic("<", "a", ">"))
	assert.Equal(t, "", Diagnostic("", "", ""))
}
