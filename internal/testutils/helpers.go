package testutils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDocument writes content to name inside a fresh temporary directory.
// It returns the absolute path of the file and fails the test immediately on error.
func WriteDocument(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absPath, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write document")
	return path
}

// NewLogger writes text records without timestamps so output is comparable.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
