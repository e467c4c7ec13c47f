package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIO(t *testing.T) {
	io := DefaultIO()

	assert.Equal(t, os.Stdin, io.Reader)
	assert.Equal(t, os.Stdout, io.Writer)
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("json"))
	assert.Error(t, validateFormat("xml"))
	assert.Error(t, validateFormat(""))
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, map[string]any{"valid": true}))

	assert.Equal(t, "{\n  \"valid\": true\n}\n", out.String())
}
