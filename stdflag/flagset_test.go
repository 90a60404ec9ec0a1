package stdflag

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blobfolio/argyle"
)

func TestFromFlagSet(t *testing.T) {
	t.Parallel()
	fls := flag.NewFlagSet("", flag.ContinueOnError)
	fls.String("threads", "", "")
	fls.Bool("verbose", false, "")
	fls.String("j", "", "")

	reg, err := FromFlagSet(fls)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	args, err := argyle.Collect(argyle.FromArgs(
		[]string{"--threads=8", "-j", "4", "--verbose", "extra"},
		reg,
	))
	require.NoError(t, err)
	require.Equal(t, []argyle.Argument{
		{Kind: argyle.ArgKindKeyWithValue, Key: "--threads", Value: "8", Raw: "--threads=8"},
		{Kind: argyle.ArgKindKeyWithValue, Key: "-j", Value: "4", Raw: "-j"},
		{Kind: argyle.ArgKindKey, Key: "--verbose", Raw: "--verbose"},
		{Kind: argyle.ArgKindOther, Raw: "extra"},
	}, args)
}

func TestFromFlagSetInvalidName(t *testing.T) {
	t.Parallel()
	fls := flag.NewFlagSet("", flag.ContinueOnError)
	fls.String("bad_name", "", "")

	_, err := FromFlagSet(fls)
	var invalidKey *argyle.InvalidKeyError
	require.ErrorAs(t, err, &invalidKey)
	require.Equal(t, "--bad_name", invalidKey.Key)
}
