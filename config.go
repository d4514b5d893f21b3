package flamingarrows

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfig is the document written when no configuration file exists.
const DefaultConfig = `flaming-arrows:
  charges-required:
    flint-and-steel: 5
  fire-ticks:
    non-player: 600
    player: 0
  messages:
    disabled: '*Flaming Arrows* You are now firing normal arrows.'
    enabled: '*Flaming Arrows* You are now firing flaming arrows.'
    ran-out: '*Flaming Arrows* You don''t have enough Flint & Steel'
  operators: []
  wand: bow
  whitelist:
    - '*'
`

// YAMLStore is a ConfigStore backed by a YAML document. Keys are dotted paths
// into nested mappings, e.g. "flaming-arrows.fire-ticks.player".
type YAMLStore struct {
	root map[string]any
}

// ParseYAML decodes a YAML document into a store. An empty document yields an
// empty store.
func ParseYAML(data []byte) (*YAMLStore, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("flamingarrows: parse config: %w", err)
	}
	if root == nil {
		root = map[string]any{}
	}
	return &YAMLStore{root: root}, nil
}

// ReadConfigFile reads and decodes the YAML file at path.
func ReadConfigFile(path string) (*YAMLStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flamingarrows: read config %s: %w", path, err)
	}
	store, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("flamingarrows: %s: %w", path, err)
	}
	return store, nil
}

// WriteDefaultConfig writes DefaultConfig to path if no file exists there,
// creating parent directories as needed. It reports whether a file was written.
// An existing file is never touched.
func WriteDefaultConfig(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("flamingarrows: create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("flamingarrows: create config: %w", err)
	}

	if _, err := f.WriteString(DefaultConfig); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("flamingarrows: write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("flamingarrows: close config: %w", err)
	}
	return true, nil
}

// lookup walks the dotted key through nested mappings.
func (s *YAMLStore) lookup(key string) (any, bool) {
	var cur any = s.root
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// String returns the string at key, or def.
func (s *YAMLStore) String(key, def string) string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	str, ok := v.(string)
	if !ok {
		return def
	}
	return str
}

// Int returns the integer at key, or def. Floating point values are truncated
// and saturate at the int range.
func (s *YAMLStore) Int(key string, def int) int {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		if n > math.MaxInt {
			return math.MaxInt
		}
		return int(n)
	case float64:
		if math.IsNaN(n) {
			return def
		}
		if n >= math.MaxInt {
			return math.MaxInt
		}
		if n <= math.MinInt {
			return math.MinInt
		}
		return int(n)
	}
	return def
}

// Bool returns the boolean at key, or def.
func (s *YAMLStore) Bool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// StringList returns the sequence at key with every scalar element formatted
// as a string, or def if the key does not hold a sequence.
func (s *YAMLStore) StringList(key string, def []string) []string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	seq, ok := v.([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		switch e := e.(type) {
		case string:
			out = append(out, e)
		case int, int64, uint64, float64, bool:
			out = append(out, fmt.Sprint(e))
		}
	}
	return out
}
