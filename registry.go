package oidpath

import (
	"strings"
	"sync"
)

// maxRegistered bounds the registry. Reaching it clears the cache.
const maxRegistered = 256

var (
	registry   = make(map[string]*Transformer)
	registryMu sync.RWMutex
)

// Use returns a cached Transformer for paths or builds a new one.
// Transformers are cached by their normalized path set, so path order and
// duplicates do not matter. No paths means DefaultPath.
//
// The cache holds at most maxRegistered path sets and is cleared when it
// fills, so callers passing many distinct path sets rebuild transformers
// instead of growing it without bound. Long-lived callers should keep their
// own Transformer from NewTransformer.
func Use(paths ...string) (*Transformer, error) {
	spec, err := ParsePaths(paths...)
	if err != nil {
		return nil, err
	}
	key := strings.Join(spec.Strings(), "\x00")

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	t, err := NewTransformer(WithPaths(spec.Strings()...))
	if err != nil {
		return nil, err
	}

	if len(registry) >= maxRegistered {
		registry = make(map[string]*Transformer)
	}
	registry[key] = t
	return t, nil
}

// Reset clears the transformer registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Transformer)
}
