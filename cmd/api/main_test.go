package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger entra en pánico si su FilePath no existe; el
// arranque solo debe registrarlo cuando el spec está presente.
func TestSwaggerSpecExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")

	assert.False(t, swaggerSpecExists(path),
		"sin el archivo no debe registrarse el middleware")

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	assert.True(t, swaggerSpecExists(path))
}
