package argyle

// Collect drains the classifier into a slice. On a classification
// error the events produced so far are returned alongside it.
func Collect(c *Classifier) ([]Argument, error) {
	var out []Argument
	for c.Next() {
		out = append(out, c.Argument())
	}
	return out, c.Err()
}

// Lookup returns the first collected event matching the given registry
// literal.
func Lookup(args []Argument, key string) (Argument, bool) {
	for _, a := range args {
		switch a.Kind {
		case ArgKindKey, ArgKindKeyWithValue, ArgKindCommand:
			if a.Key == key {
				return a, true
			}
		}
	}
	return Argument{}, false
}

// Positionals returns the raw text of every ArgKindOther and
// ArgKindPath event, in order.
func Positionals(args []Argument) []string {
	var out []string
	for _, a := range args {
		if a.Kind == ArgKindOther || a.Kind == ArgKindPath {
			out = append(out, a.Raw)
		}
	}
	return out
}
