package argyle

import "strings"

// ArgKind tags an Argument classification event.
type ArgKind int

const (
	// ArgKindKey is a switch matched exactly.
	ArgKindKey ArgKind = iota
	// ArgKindKeyWithValue is a value option together with its value.
	ArgKindKeyWithValue
	// ArgKindCommand is a recognized subcommand name.
	ArgKindCommand
	// ArgKindOther is an unmatched positional token.
	ArgKindOther
	// ArgKindPath is an unmatched positional token that exists on disk.
	// Only produced when path detection is enabled; mutually exclusive
	// with ArgKindOther for a given token.
	ArgKindPath
	// ArgKindInvalidUTF8 is a token that could not be decoded as text.
	// Raw carries the original bytes unchanged.
	ArgKindInvalidUTF8
)

// Argument is one classification event.
//
// Key holds the matched registry literal for ArgKindKey,
// ArgKindKeyWithValue and ArgKindCommand. Value is only set for
// ArgKindKeyWithValue. Raw always preserves the original token; when a
// value option took its value from the following token, Raw holds only
// the key token and the value token is recoverable via Tokens.
type Argument struct {
	Kind  ArgKind
	Key   string
	Value string
	Raw   string
}

// Bytes returns the original token bytes. For ArgKindInvalidUTF8 this
// is the only lossless representation.
func (a Argument) Bytes() []byte {
	return []byte(a.Raw)
}

// Tokens reconstructs the raw command-line token(s) this event was
// built from. A value option that consumed the following token expands
// back into two tokens.
func (a Argument) Tokens() []string {
	if a.Kind == ArgKindKeyWithValue && a.Raw == a.Key {
		return []string{a.Key, a.Value}
	}
	return []string{a.Raw}
}

func (a Argument) String() string {
	return strings.Join(a.Tokens(), " ")
}
