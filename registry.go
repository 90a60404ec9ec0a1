package argyle

// KeyPair declares a keyword literal together with whether it expects a
// value. It is the mixed-collection form accepted by AddPairs.
type KeyPair struct {
	Text       string
	TakesValue bool
}

// Registry is an insertion-ordered, duplicate-free keyword set.
// Build it fully before classification starts; the Classifier never
// mutates it and assumes nobody else does either.
type Registry struct {
	order    []KeyWord
	index    map[string]KeyWord
	commands int
}

func NewRegistry(kws ...KeyWord) (*Registry, error) {
	r := &Registry{
		index: make(map[string]KeyWord, len(kws)),
	}
	if err := r.Add(kws...); err != nil {
		return nil, err
	}
	return r, nil
}

// Add registers already-built keywords. The zero KeyWord value is
// rejected as invalid.
func (r *Registry) Add(kws ...KeyWord) error {
	if r.index == nil {
		r.index = make(map[string]KeyWord, len(kws))
	}
	for _, kw := range kws {
		if kw.text == "" {
			return &InvalidKeyError{Key: kw.text}
		}
		if _, has := r.index[kw.text]; has {
			return &DuplicateKeyError{Key: kw.text}
		}
		r.index[kw.text] = kw
		r.order = append(r.order, kw)
		if kw.kind == KindCommand {
			r.commands++
		}
	}
	return nil
}

// AddSwitches builds and registers switch keywords from their literals.
func (r *Registry) AddSwitches(texts ...string) error {
	for _, text := range texts {
		kw, err := Key(text)
		if err != nil {
			return err
		}
		if err := r.Add(kw); err != nil {
			return err
		}
	}
	return nil
}

// AddOptions builds and registers value-option keywords from their
// literals.
func (r *Registry) AddOptions(texts ...string) error {
	for _, text := range texts {
		kw, err := KeyWithValue(text)
		if err != nil {
			return err
		}
		if err := r.Add(kw); err != nil {
			return err
		}
	}
	return nil
}

// AddCommands builds and registers subcommand keywords from their names.
func (r *Registry) AddCommands(names ...string) error {
	for _, name := range names {
		kw, err := Command(name)
		if err != nil {
			return err
		}
		if err := r.Add(kw); err != nil {
			return err
		}
	}
	return nil
}

// AddPairs registers a mixed collection of (literal, expects-value)
// declarations.
func (r *Registry) AddPairs(pairs ...KeyPair) error {
	for _, p := range pairs {
		var (
			kw  KeyWord
			err error
		)
		if p.TakesValue {
			kw, err = KeyWithValue(p.Text)
		} else {
			kw, err = Key(p.Text)
		}
		if err != nil {
			return err
		}
		if err := r.Add(kw); err != nil {
			return err
		}
	}
	return nil
}

// Keywords returns the registered keywords in insertion order.
func (r *Registry) Keywords() []KeyWord {
	out := make([]KeyWord, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) lookup(text string) (KeyWord, bool) {
	kw, has := r.index[text]
	return kw, has
}

func (r *Registry) hasCommands() bool {
	return r.commands > 0
}
