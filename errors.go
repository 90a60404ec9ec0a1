package argyle

import "fmt"

// InvalidKeyError reports a keyword literal that violates the shape
// rules. It is returned at registry-build time, before any
// classification happens.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid keyword %q", e.Key)
}

// DuplicateKeyError reports a keyword whose literal text was already
// registered.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate keyword %q", e.Key)
}

// MissingValueError reports a value option that appeared as the final
// token with nothing left to consume as its value. It terminates the
// classification stream.
type MissingValueError struct {
	Key string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for %q", e.Key)
}
