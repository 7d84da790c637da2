package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strenum/compiler/gen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		generateFlags = genFlags{}
		checkSchema = ""
		verbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("requires a schema file", func(t *testing.T) {
		_, err := execute(t, "generate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"file"`)
	})

	t.Run("writes the enums", func(t *testing.T) {
		target := t.TempDir()
		out, err := execute(t, "generate", "-f", "testdata/enums.yaml", "-o", target, "--feature", "yaml,msgpack", "--workers", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "generated 2 enums in "+target)

		buf, err := os.ReadFile(filepath.Join(target, "my_enum.go"))
		require.NoError(t, err)
		code := string(buf)
		assert.Contains(t, code, "// "+gen.DefaultHeader)
		assert.Contains(t, code, "func (v MyEnum) MarshalJSON() ([]byte, error) {")
		assert.Contains(t, code, "func (v MyEnum) MarshalYAML() (any, error) {")
		assert.Contains(t, code, "func (v MyEnum) EncodeMsgpack(enc *msgpack.Encoder) error {")
		assert.NotContains(t, code, "MarshalGQL")
	})

	t.Run("overrides package and header", func(t *testing.T) {
		target := t.TempDir()
		_, err := execute(t, "generate", "-f", "testdata/enums.yaml", "-o", target, "--package", "enums", "--header", "Generated file.")
		require.NoError(t, err)
		buf, err := os.ReadFile(filepath.Join(target, "level.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), "// Generated file.")
		assert.Contains(t, string(buf), "package enums")
	})

	t.Run("verbose logging", func(t *testing.T) {
		out, err := execute(t, "generate", "-v", "-f", "testdata/enums.yaml", "-o", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, out, "enum generated")
		assert.Contains(t, out, "generation finished")
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := execute(t, "generate", "-f", "testdata/enums.yaml", "-o", t.TempDir(), "--feature", "protobuf")
		assert.True(t, gen.IsConfigError(err))
	})
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "-f", "testdata/enums.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "VALUE TABLE")
	assert.Regexp(t, `MyEnum\s+uint8\s+2\s+Variant1,Variant2`, out)
	assert.Regexp(t, `Level\s+int8\s+2\s+debug,info`, out)

	_, err = execute(t, "check", "-f", "testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "strenum dev")
	assert.Contains(t, out, "commit:  none")
}
