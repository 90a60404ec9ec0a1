// Package argsrc supplies raw argument tokens to the classifier.
package argsrc

import "os"

// Source is a pull-based token sequence. Next returns the next raw
// token, or false once the sequence is exhausted. Err reports the first
// read failure, if any; it is only meaningful after Next has returned
// false.
type Source interface {
	Next() (string, bool)
	Err() error
}

type sliceSource struct {
	tokens []string
	pos    int
}

// Slice returns a Source over an in-memory token list.
func Slice(tokens []string) Source {
	return &sliceSource{tokens: tokens}
}

func (s *sliceSource) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func (s *sliceSource) Err() error {
	return nil
}

// Env returns a Source over the live process arguments, skipping the
// program name.
func Env() Source {
	return Slice(os.Args[1:])
}
