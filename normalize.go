package argyle

import "strings"

// match applies the keyword-matching rules to a single decoded token,
// in strict priority order:
//
//  1. whole-token switch or option match;
//  2. "="-attached value, when the prefix names a value option;
//  3. glued short-option value ("-j5").
//
// attached reports whether the value was carried inside the token
// itself; a matched value option with attached == false still needs the
// following token. ok == false means the token is positional.
// Subcommand names never match here; they are handled separately since
// they only apply to the first positional token.
func (r *Registry) match(tok string) (kw KeyWord, value string, attached bool, ok bool) {
	if kw, has := r.lookup(tok); has && kw.kind != KindCommand {
		return kw, "", false, true
	}

	// Attached forms need at least a dash, a key character and a value
	// character.
	if len(tok) < 3 || tok[0] != '-' {
		return KeyWord{}, "", false, false
	}

	if i := strings.IndexByte(tok, '='); i > 0 {
		// A prefix naming a switch falls through: switches cannot
		// carry "=value".
		if kw, has := r.lookup(tok[:i]); has && kw.kind == KindValueOption {
			return kw, tok[i+1:], true, true
		}
	}

	if tok[1] != '-' {
		if kw, has := r.lookup(tok[:2]); has && kw.kind == KindValueOption {
			return kw, tok[2:], true, true
		}
	}

	return KeyWord{}, "", false, false
}
