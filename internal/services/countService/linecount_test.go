package countservice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int64
	}{
		{"empty file", "", 0},
		{"no trailing newline", "a\nb", 1},
		{"trailing newline", "a\nb\n", 2},
		{"only newlines", "\n\n\n", 3},
		{"single line no newline", "just one line", 0},
		{"crlf counts the lf", "a\r\nb\r\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountLines(writeTestFile(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountLinesAcrossChunkBoundaries(t *testing.T) {
	// 40000 bytes, crossing the 32 KiB read buffer
	path := writeTestFile(t, strings.Repeat("x\n", 20000))

	got, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), got)
}

func TestCountLinesMissingFile(t *testing.T) {
	_, err := CountLines(filepath.Join(t.TempDir(), "absent.go"))
	require.Error(t, err)
}

func TestCountLinesDirectory(t *testing.T) {
	_, err := CountLines(t.TempDir())
	require.Error(t, err)
}
