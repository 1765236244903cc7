package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer

	prevOut, prevVerbose, prevNoColor := Out, Verbose, color.NoColor
	Out, Verbose, color.NoColor = &buf, verbose, true
	t.Cleanup(func() {
		Out, Verbose, color.NoColor = prevOut, prevVerbose, prevNoColor
	})
	return &buf
}

func TestStatusLines(t *testing.T) {
	buf := captureOutput(t, false)

	Info("hidden %d", 1)
	Success("wrote %s", "erd.dot")
	Warn("no tables")
	Fail("boom: %v", os.ErrClosed)

	assert.Equal(t, "✅ wrote erd.dot\n⚠️  no tables\n❌ boom: file already closed\n", buf.String())
}

func TestInfoVerbose(t *testing.T) {
	buf := captureOutput(t, true)

	Info("loading %s", "public")
	assert.Equal(t, "ℹ️  loading public\n", buf.String())
}

func TestLoadEnv(t *testing.T) {
	captureOutput(t, false)
	path := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, os.WriteFile(path, []byte("ERD_TEST_FROM_FILE=yes\n"), 0644))
	t.Setenv("ERD_TEST_FROM_FILE", "")
	os.Unsetenv("ERD_TEST_FROM_FILE")

	assert.True(t, LoadEnv(path))
	assert.Equal(t, "yes", os.Getenv("ERD_TEST_FROM_FILE"))

	assert.False(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}
