// SPDX-License-Identifier: MIT
// File: store.go
// Role: In-memory property store keyed by Subject.
// Concurrency:
//   - All methods hold mu; returned maps are copies.

package props

import (
	"fmt"
	"sync"
)

// Store maps subjects to their properties. The zero value is not usable; call NewStore.
type Store struct {
	mu   sync.RWMutex
	data map[Subject]Properties
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[Subject]Properties)}
}

// Get returns the value stored under key for s.
// Returns ErrPropertyNotFound when absent.
// Complexity: O(1).
func (st *Store) Get(s Subject, key string) (Value, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	v, ok := st.data[s][key]
	if !ok {
		return Value{}, fmt.Errorf("Get(%s, %q): %w", s, key, ErrPropertyNotFound)
	}

	return v, nil
}

// Set stores v under key for s, replacing any previous value.
// Setting an invalid Value is rejected with ErrUnsupportedValue.
// Complexity: O(1).
func (st *Store) Set(s Subject, key string, v Value) error {
	if !v.IsValid() {
		return fmt.Errorf("Set(%s, %q): %w", s, key, ErrUnsupportedValue)
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	st.bucket(s)[key] = v

	return nil
}

// GetAll returns a copy of every property of s (empty, never nil).
// Complexity: O(k) for k stored keys.
func (st *Store) GetAll(s Subject) Properties {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.data[s].Clone()
}

// SetAll merges p into the properties of s (overwrite-and-union).
// The whole batch is validated before anything is written.
// Complexity: O(len(p)).
func (st *Store) SetAll(s Subject, p Properties) error {
	for k, v := range p {
		if !v.IsValid() {
			return fmt.Errorf("SetAll(%s): key %q: %w", s, k, ErrUnsupportedValue)
		}
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(p) == 0 {
		return nil
	}
	b := st.bucket(s)
	for k, v := range p {
		b[k] = v
	}

	return nil
}

// Has reports whether key is set for s.
func (st *Store) Has(s Subject, key string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()

	_, ok := st.data[s][key]

	return ok
}

// Delete removes key from s; missing keys are ignored.
func (st *Store) Delete(s Subject, key string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if b, ok := st.data[s]; ok {
		delete(b, key)
		if len(b) == 0 {
			delete(st.data, s)
		}
	}
}

// Subjects returns every subject that currently holds at least one property.
// Order is unspecified.
func (st *Store) Subjects() []Subject {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]Subject, 0, len(st.data))
	for s := range st.data {
		out = append(out, s)
	}

	return out
}

// Clone returns an independent deep copy.
func (st *Store) Clone() *Store {
	st.mu.RLock()
	defer st.mu.RUnlock()

	c := &Store{data: make(map[Subject]Properties, len(st.data))}
	for s, p := range st.data {
		c.data[s] = p.Clone()
	}

	return c
}

// bucket returns the properties of s, creating them on demand. Caller holds mu.
func (st *Store) bucket(s Subject) Properties {
	b, ok := st.data[s]
	if !ok {
		b = make(Properties)
		st.data[s] = b
	}

	return b
}
