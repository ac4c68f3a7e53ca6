/*
   Copyright 2025 The tp Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"slices"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
)

// Element is the constraint satisfied by set members: comparable value
// objects with a canonical rendering.
type Element interface {
	comparable
	String() string
}

// Set is an immutable, unordered collection of distinct elements.
//
// A Set is built once with NewSet and never changes afterwards. The
// mutating methods Add, Remove and Clear exist only to make the read-only
// nature explicit: they always fail with *errors.UnsupportedMutationError.
// Iteration through Items is ordered by each element's String rendering so
// that output built from a Set is deterministic. The zero value is an
// empty Set.
type Set[T Element] struct {
	items map[T]struct{}
}

// NewSet returns a Set holding the distinct values of items. Duplicates
// collapse silently.
func NewSet[T Element](items ...T) Set[T] {
	s := Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Len returns the number of distinct elements.
func (s Set[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the Set has no elements.
func (s Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Contains reports whether v is a member of the Set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Items returns a snapshot of the elements ordered by their String
// rendering. The returned slice is owned by the caller.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b T) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// Equal reports whether both sets hold the same elements, regardless of
// insertion order.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for item := range s.items {
		if _, ok := other.items[item]; !ok {
			return false
		}
	}
	return true
}

// String concatenates the renderings of all elements in Items order.
func (s Set[T]) String() string {
	var b strings.Builder
	for _, item := range s.Items() {
		b.WriteString(item.String())
	}
	return b.String()
}

// Add always fails: Sets are read-only.
func (s Set[T]) Add(T) error {
	return &errors.UnsupportedMutationError{Type: "Set", Op: "Add"}
}

// Remove always fails: Sets are read-only.
func (s Set[T]) Remove(T) error {
	return &errors.UnsupportedMutationError{Type: "Set", Op: "Remove"}
}

// Clear always fails: Sets are read-only.
func (s Set[T]) Clear() error {
	return &errors.UnsupportedMutationError{Type: "Set", Op: "Clear"}
}
