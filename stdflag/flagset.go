// Package stdflag bridges standard library flag sets to argyle
// registries.
package stdflag

import (
	"flag"

	"github.com/Blobfolio/argyle"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// FromFlagSet converts the formal flags of fls into a Registry: bool
// flags become switches, everything else value options. Single-character
// names register as short keys, longer names as double-dash long keys.
func FromFlagSet(fls *flag.FlagSet) (*argyle.Registry, error) {
	reg, err := argyle.NewRegistry()
	if err != nil {
		return nil, err
	}
	var visitErr error
	fls.VisitAll(func(f *flag.Flag) {
		if visitErr != nil {
			return
		}
		text := "--" + f.Name
		if len(f.Name) == 1 {
			text = "-" + f.Name
		}
		isBool := false
		if bf, ok := f.Value.(boolFlag); ok {
			isBool = bf.IsBoolFlag()
		}
		var (
			kw   argyle.KeyWord
			kerr error
		)
		if isBool {
			kw, kerr = argyle.Key(text)
		} else {
			kw, kerr = argyle.KeyWithValue(text)
		}
		if kerr == nil {
			kerr = reg.Add(kw)
		}
		if kerr != nil {
			visitErr = kerr
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}
	return reg, nil
}
