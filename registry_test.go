package argyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAdd(t *testing.T) {
	t.Parallel()
	help, err := Key("--help")
	require.NoError(t, err)
	threads, err := KeyWithValue("--threads")
	require.NoError(t, err)

	reg, err := NewRegistry(help, threads)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())
	require.Equal(t, []KeyWord{help, threads}, reg.Keywords())
}

func TestRegistryDuplicates(t *testing.T) {
	t.Parallel()
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.AddSwitches("-h"))

	err = reg.AddOptions("-h")
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "-h", dup.Key)

	require.NoError(t, reg.AddCommands("make"))
	require.ErrorAs(t, reg.AddCommands("make"), &dup)

	// A failed add leaves earlier keywords in place.
	require.Equal(t, 2, reg.Len())
}

func TestRegistryInvalidKeywords(t *testing.T) {
	t.Parallel()
	reg, err := NewRegistry()
	require.NoError(t, err)

	var invalidKey *InvalidKeyError
	require.ErrorAs(t, reg.AddSwitches("no-dash"), &invalidKey)
	require.ErrorAs(t, reg.AddOptions("="), &invalidKey)
	require.ErrorAs(t, reg.AddPairs(KeyPair{Text: "--"}), &invalidKey)

	// The zero KeyWord is rejected too.
	require.ErrorAs(t, reg.Add(KeyWord{}), &invalidKey)
	require.Equal(t, 0, reg.Len())
}

func TestRegistryAddPairs(t *testing.T) {
	t.Parallel()
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.AddPairs(
		KeyPair{Text: "--verbose"},
		KeyPair{Text: "--output", TakesValue: true},
	))

	kws := reg.Keywords()
	require.Len(t, kws, 2)
	require.Equal(t, "--verbose", kws[0].Text())
	require.False(t, kws[0].TakesValue())
	require.Equal(t, "--output", kws[1].Text())
	require.True(t, kws[1].TakesValue())
}
