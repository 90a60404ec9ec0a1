// Package argyle classifies raw command-line tokens into typed events
// against a caller-declared keyword set.
//
// It occupies the middle ground between reading os.Args directly and a
// full flag framework: tokens are normalized and matched (exact match,
// "="-attached values, glued short-option values, the "--" end-of-options
// marker) while validation, help output and per-command grammars are left
// to the caller.
//
// Declare the keywords you care about in a Registry, then pull events
// from a Classifier:
//
//	reg, _ := argyle.NewRegistry()
//	_ = reg.AddSwitches("-h", "--help")
//	_ = reg.AddOptions("-j", "--threads")
//
//	c := argyle.FromEnv(reg)
//	for c.Next() {
//		switch arg := c.Argument(); arg.Kind {
//		case argyle.ArgKindKey:
//			// boolean flag
//		case argyle.ArgKindKeyWithValue:
//			// arg.Key, arg.Value
//		case argyle.ArgKindOther:
//			// positional
//		}
//	}
//	if err := c.Err(); err != nil {
//		// a value option appeared with nothing left to consume
//	}
package argyle
