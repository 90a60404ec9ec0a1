package argyle

type KeyKind int

const (
	// KindSwitch is a boolean flag that carries no value.
	KindSwitch KeyKind = iota
	// KindValueOption requires a value, attached or taken from the
	// following token.
	KindValueOption
	// KindCommand is a bare subcommand name.
	KindCommand
)

// KeyWord is an immutable descriptor of one recognized keyword.
// Build instances with Key, KeyWithValue or Command; the zero value is
// not a usable keyword.
type KeyWord struct {
	text string
	kind KeyKind
}

func (k KeyWord) Text() string {
	return k.text
}

func (k KeyWord) Kind() KeyKind {
	return k.kind
}

func (k KeyWord) TakesValue() bool {
	return k.kind == KindValueOption
}

// Key builds a switch keyword. Valid literals are either a short key
// (one dash and a single ASCII alphanumeric) or a long key (two dashes,
// an ASCII alphanumeric, then any mix of alphanumerics and hyphens).
func Key(text string) (KeyWord, error) {
	if !validKey(text) {
		return KeyWord{}, &InvalidKeyError{Key: text}
	}
	return KeyWord{text: text, kind: KindSwitch}, nil
}

// KeyWithValue builds a value-option keyword. The literal rules are the
// same as for Key.
func KeyWithValue(text string) (KeyWord, error) {
	if !validKey(text) {
		return KeyWord{}, &InvalidKeyError{Key: text}
	}
	return KeyWord{text: text, kind: KindValueOption}, nil
}

// Command builds a subcommand keyword. Names start with an ASCII
// alphanumeric followed by any mix of alphanumerics, hyphens and
// underscores.
func Command(name string) (KeyWord, error) {
	if !validCommand(name) {
		return KeyWord{}, &InvalidKeyError{Key: name}
	}
	return KeyWord{text: name, kind: KindCommand}, nil
}

func validKey(key string) bool {
	if len(key) < 2 || key[0] != '-' {
		return false
	}
	if key[1] != '-' {
		// Short form: exactly one character after the dash.
		return len(key) == 2 && isAlnum(key[1])
	}
	rest := key[2:]
	if rest == "" || !isAlnum(rest[0]) {
		return false
	}
	for i := 1; i < len(rest); i++ {
		if !isAlnum(rest[i]) && rest[i] != '-' {
			return false
		}
	}
	return true
}

func validCommand(name string) bool {
	if name == "" || !isAlnum(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlnum(name[i]) && name[i] != '-' && name[i] != '_' {
			return false
		}
	}
	return true
}

func isAlnum(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}
