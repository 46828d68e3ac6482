package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture is a YAML seed for a MemoryStore:
//
//	collections:
//	  place:
//	    hall:
//	      name: Main hall
//	      congestion: 2
//
// String values in RFC 3339 form are stored as timestamps.
type Fixture struct {
	Collections map[string]map[string]map[string]interface{} `yaml:"collections"`
}

// LoadFixture reads and parses the fixture at path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture parses fixture YAML.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Seed writes every fixture document into s, overwriting existing ones.
func (f *Fixture) Seed(ctx context.Context, s Store) error {
	for collection, docs := range f.Collections {
		for id, data := range docs {
			if err := s.Set(ctx, collection, id, fixtureMap(data)); err != nil {
				return fmt.Errorf("seed %s/%s: %w", collection, id, err)
			}
		}
	}
	return nil
}

func fixtureMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = fixtureValue(v)
	}
	return out
}

func fixtureValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
		return t
	case int:
		return int64(t)
	case map[string]interface{}:
		return fixtureMap(t)
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = fixtureValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = fixtureValue(e)
		}
		return out
	}
	return v
}
