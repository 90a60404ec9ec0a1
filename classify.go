package argyle

import (
	"os"
	"unicode/utf8"

	"github.com/Blobfolio/argyle/argsrc"
)

const terminator = "--"

// Classifier turns a raw token source into a stream of Argument events.
//
// It is a single-pass, pull-based iterator in the bufio.Scanner shape:
//
//	c := argyle.FromArgs(tokens, reg)
//	for c.Next() {
//		arg := c.Argument()
//		// ...
//	}
//	if err := c.Err(); err != nil {
//		// ...
//	}
//
// Once a token has been consumed it cannot be re-examined, and the
// stream is not restartable without a fresh source. Dropping the
// classifier mid-stream is always safe.
type Classifier struct {
	src argsrc.Source
	reg *Registry

	cur  Argument
	err  error
	done bool

	endOfOptions   bool
	seenPositional bool
	detectPaths    bool
}

func New(src argsrc.Source, reg *Registry) *Classifier {
	return &Classifier{src: src, reg: reg}
}

// FromEnv classifies the live process arguments, skipping the program
// name.
func FromEnv(reg *Registry) *Classifier {
	return New(argsrc.Env(), reg)
}

// FromArgs classifies an in-memory token list.
func FromArgs(tokens []string, reg *Registry) *Classifier {
	return New(argsrc.Slice(tokens), reg)
}

// FromFile classifies tokens read line by line from path, with "-"
// meaning standard input.
func FromFile(path string, reg *Registry) (*Classifier, error) {
	src, err := argsrc.Open(path)
	if err != nil {
		return nil, err
	}
	return New(src, reg), nil
}

// WithPathDetection makes unmatched positional tokens probe for
// filesystem existence, yielding ArgKindPath on success.
func (c *Classifier) WithPathDetection() *Classifier {
	c.detectPaths = true
	return c
}

// SwapRegistry replaces the active registry for all subsequent tokens.
// The usual trigger is an ArgKindCommand event whose subcommand expects
// its own keyword set; the classifier itself attaches no meaning to the
// swap.
func (c *Classifier) SwapRegistry(reg *Registry) {
	c.reg = reg
}

// Next advances to the next classification event. It returns false when
// the source is exhausted or classification failed; Err tells the two
// apart.
func (c *Classifier) Next() bool {
	if c.done {
		return false
	}
	for {
		tok, ok := c.src.Next()
		if !ok {
			c.stop(c.src.Err())
			return false
		}

		// Bare empty tokens carry no information.
		if tok == "" {
			continue
		}

		// No text-level match is possible for non-UTF-8 tokens, in
		// either mode.
		if !utf8.ValidString(tok) {
			c.cur = Argument{Kind: ArgKindInvalidUTF8, Raw: tok}
			return true
		}

		if !c.endOfOptions {
			if tok == terminator {
				c.endOfOptions = true
				continue
			}
			if kw, value, attached, matched := c.reg.match(tok); matched {
				arg, err := c.keywordEvent(tok, kw, value, attached)
				if err != nil {
					c.stop(err)
					return false
				}
				c.cur = arg
				return true
			}
		}

		c.cur = c.positional(tok)
		return true
	}
}

// Argument returns the event produced by the last successful Next call.
func (c *Classifier) Argument() Argument {
	return c.cur
}

// Err returns the error that terminated the stream, or nil after normal
// exhaustion.
func (c *Classifier) Err() error {
	return c.err
}

// Iterate drains the stream through yield, stopping early if yield
// returns false. It returns the terminal error, if any.
func (c *Classifier) Iterate(yield func(Argument) bool) error {
	for c.Next() {
		if !yield(c.Argument()) {
			return nil
		}
	}
	return c.Err()
}

func (c *Classifier) keywordEvent(tok string, kw KeyWord, value string, attached bool) (Argument, error) {
	if kw.kind == KindSwitch {
		return Argument{Kind: ArgKindKey, Key: kw.text, Raw: tok}, nil
	}
	if !attached {
		// Exact option match: the following token is consumed verbatim
		// as the value, with no further splitting.
		next, ok := c.src.Next()
		if !ok {
			if err := c.src.Err(); err != nil {
				return Argument{}, err
			}
			return Argument{}, &MissingValueError{Key: kw.text}
		}
		value = next
	}
	return Argument{Kind: ArgKindKeyWithValue, Key: kw.text, Value: value, Raw: tok}, nil
}

func (c *Classifier) positional(tok string) Argument {
	if !c.endOfOptions && !c.seenPositional {
		c.seenPositional = true
		if kw, has := c.reg.lookup(tok); has && kw.kind == KindCommand {
			return Argument{Kind: ArgKindCommand, Key: kw.text, Raw: tok}
		}
	}
	if c.detectPaths {
		if _, err := os.Stat(tok); err == nil {
			return Argument{Kind: ArgKindPath, Raw: tok}
		}
	}
	return Argument{Kind: ArgKindOther, Raw: tok}
}

func (c *Classifier) stop(err error) {
	c.done = true
	if c.err == nil {
		c.err = err
	}
}
