package argsrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("-h\n--threads\n8\n\nextra\n"), 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	var tokens []string
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	// Blank lines come through as empty tokens; the classifier is the
	// one that skips them.
	require.Equal(t, []string{"-h", "--threads", "8", "", "extra"}, tokens)
	require.NoError(t, src.Err())
	require.NoError(t, src.Close())
}

func TestFileSourceCRLF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("-h\r\n--threads\r\n8\r\n"), 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	var tokens []string
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	require.Equal(t, []string{"-h", "--threads", "8"}, tokens)
	require.NoError(t, src.Err())
}

func TestFileSourceMissing(t *testing.T) {
	t.Parallel()
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
