package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeKeywords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	decl := "switches: [\"-h\"]\noptions: [\"--threads\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(decl), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-keywords", writeKeywords(t), "--", "-h", "--threads=8", "extra"},
		&stdout, &stderr,
	)
	require.NoError(t, err)
	require.Equal(t,
		"switch   -h\n"+
			"option   --threads = \"8\"\n"+
			"other    extra\n",
		stdout.String(),
	)
}

func TestRunArgsFile(t *testing.T) {
	t.Parallel()
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(argsPath, []byte("-h\nextra\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-keywords", writeKeywords(t), "-args-file", argsPath},
		&stdout, &stderr,
	)
	require.NoError(t, err)
	require.Equal(t, "switch   -h\nother    extra\n", stdout.String())
}

func TestRunMissingKeywords(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	require.ErrorContains(t, err, "-keywords file is required")
}

func TestRunBadLogLevel(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	err := run([]string{"-log-level", "loud"}, &stdout, &stderr)
	require.ErrorContains(t, err, "invalid log-level")
}
