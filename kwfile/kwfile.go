// Package kwfile loads keyword declarations from YAML or TOML files.
package kwfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Blobfolio/argyle"
)

// File is the on-disk declaration format:
//
//	commands: [make, clean]
//	switches: ["-h", "--help"]
//	options: ["-j", "--threads"]
//	keys:
//	  "--output": true
//	  "--verbose": false
//
// The keys mapping is the mixed form; true means the keyword expects a
// value.
type File struct {
	Commands []string        `yaml:"commands" toml:"commands"`
	Switches []string        `yaml:"switches" toml:"switches"`
	Options  []string        `yaml:"options" toml:"options"`
	Keys     map[string]bool `yaml:"keys" toml:"keys"`
}

// Registry builds a registry from the declared keywords. Validation and
// duplicate errors from the argyle builders surface unchanged.
func (f *File) Registry() (*argyle.Registry, error) {
	reg, err := argyle.NewRegistry()
	if err != nil {
		return nil, err
	}
	if err := reg.AddCommands(f.Commands...); err != nil {
		return nil, err
	}
	if err := reg.AddSwitches(f.Switches...); err != nil {
		return nil, err
	}
	if err := reg.AddOptions(f.Options...); err != nil {
		return nil, err
	}
	pairs := make([]argyle.KeyPair, 0, len(f.Keys))
	for text, takesValue := range f.Keys {
		pairs = append(pairs, argyle.KeyPair{Text: text, TakesValue: takesValue})
	}
	// Map order is random; sort so error reporting stays deterministic.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Text < pairs[j].Text })
	if err := reg.AddPairs(pairs...); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadYAML parses a YAML declaration from r.
func LoadYAML(r io.Reader) (*argyle.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keywords yaml: %w", err)
	}
	return f.Registry()
}

// LoadTOML parses a TOML declaration from r.
func LoadTOML(r io.Reader) (*argyle.Registry, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse keywords toml: %w", err)
	}
	return f.Registry()
}

// Load reads a declaration file, dispatching on its extension: .yaml
// and .yml via YAML, .toml via TOML.
func Load(path string) (*argyle.Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keywords file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(file)
	case ".toml":
		return LoadTOML(file)
	default:
		return nil, fmt.Errorf("unsupported keywords format %q", ext)
	}
}
