// Package assistant defines the fixed catalog of AI assistants and the
// registry that resolves them by key or numeric ID.
package assistant

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when an identifier does not match any assistant.
var ErrNotFound = errors.New("assistant not found")

// Config is the immutable configuration bundle for one assistant.
type Config struct {
	ID          int
	Key         string
	DisplayName string
	Description string
	Category    string
	Icon        string

	SystemPrompt     string
	Model            string
	MaxTokens        int
	Temperature      float32
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// Registry maps assistant keys and numeric IDs to their configs. It is
// built once at startup and never mutated afterwards.
type Registry struct {
	byKey map[string]Config
	byID  map[int]Config
}

// NewRegistry builds a registry from the given configs. Keys and IDs
// must be in bijection; duplicates are a programming error and panic.
func NewRegistry(configs []Config) *Registry {
	r := &Registry{
		byKey: make(map[string]Config, len(configs)),
		byID:  make(map[int]Config, len(configs)),
	}
	for _, c := range configs {
		if _, dup := r.byKey[c.Key]; dup {
			panic(fmt.Sprintf("assistant: duplicate key %q", c.Key))
		}
		if _, dup := r.byID[c.ID]; dup {
			panic(fmt.Sprintf("assistant: duplicate id %d", c.ID))
		}
		r.byKey[c.Key] = c
		r.byID[c.ID] = c
	}
	return r
}

// Default returns the registry populated with the standard catalog.
func Default() *Registry {
	return NewRegistry(catalog)
}

// Resolve looks up an assistant by key.
func (r *Registry) Resolve(key string) (Config, error) {
	c, ok := r.byKey[key]
	if !ok {
		return Config{}, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// ResolveID looks up an assistant by numeric ID.
func (r *Registry) ResolveID(id int) (Config, error) {
	c, ok := r.byID[id]
	if !ok {
		return Config{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// List returns all assistant configs ordered by ID.
func (r *Registry) List() []Config {
	out := make([]Config, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered assistants.
func (r *Registry) Len() int {
	return len(r.byKey)
}
