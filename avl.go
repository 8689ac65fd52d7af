// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package avl implements an ordered map backed by an AVL tree.
//
// Every Insert and Remove restores the height-balance invariant before it
// returns, so lookups, insertions and removals are O(log n). Each node keeps
// a small balance factor rather than its height.
//
// A Map is not safe for concurrent use; callers sharing one must serialize
// access.
package avl

import (
	"cmp"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
	"go.uber.org/zap"
)

// ErrKeyNotFound is returned by Get and At for an absent key. Test for it
// with ErrKeyNotFound.Equal(err).
var ErrKeyNotFound = abstract.ErrKeyNotFound

// ErrInvariantViolated is returned by Verify.
var ErrInvariantViolated = abstract.ErrInvariantViolated

// Option configures a Map.
type Option = abstract.Option

// WithLogger sets the logger used for Clear and Verify diagnostics. The
// default is the process-wide logger from github.com/pingcap/log.
func WithLogger(l *zap.Logger) Option { return abstract.WithLogger(l) }

// WithNodePool controls whether nodes released by Remove and Clear are
// recycled. It is enabled by default.
func WithNodePool(enabled bool) Option { return abstract.WithNodePool(enabled) }

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	t abstract.AVLTree[K, V]
}

// MakeMap returns an empty Map ordered by cmp, which must return a negative
// number, zero or a positive number when its first argument is less than,
// equal to or greater than its second.
func MakeMap[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	return &Map[K, V]{
		t: abstract.MakeAVLTree[K, V](abstract.MakeConfig(cmp, opts...)),
	}
}

// New returns an empty Map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K], opts...)
}

// Insert maps k to v. If k is already present its value is overwritten in
// place and true is returned.
func (m *Map[K, V]) Insert(k K, v V) (replaced bool) {
	return m.t.Insert(k, v)
}

// Remove removes k. Removing an absent key does nothing and returns false.
func (m *Map[K, V]) Remove(k K) (removed bool) {
	return m.t.Remove(k)
}

// Find returns an Iterator at k, or one equal to End if k is absent.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{m.t.Find(k)}
}

// Get returns the value for k, or an ErrKeyNotFound error.
func (m *Map[K, V]) Get(k K) (V, error) {
	return m.t.Get(k)
}

// At returns a reference to the value for k, or an ErrKeyNotFound error.
// The reference is invalidated by removing k or clearing the Map.
func (m *Map[K, V]) At(k K) (*V, error) {
	return m.t.At(k)
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// IsEmpty returns true if the Map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.IsEmpty() }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Height returns the height of the underlying tree. O(n).
func (m *Map[K, V]) Height() int { return m.t.Height() }

// IsBalanced independently checks the AVL height-balance invariant by
// measuring subtree heights. O(n).
func (m *Map[K, V]) IsBalanced() bool { return m.t.IsBalanced() }

// Verify checks every structural invariant of the tree and returns the
// first violation. O(n).
func (m *Map[K, V]) Verify() error { return m.t.Verify() }

// All returns the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.All() }

// LowLevel returns a read-only view of the tree's links, positioned at the
// root, for rendering its shape.
func (m *Map[K, V]) LowLevel() *abstract.LowLevelIterator[K, V] {
	return m.t.LowLevel()
}

// Iterator walks a Map in key order. It is invalidated by removal of the
// entry it is positioned at and by Clear; other mutations leave it usable.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// MakeIter returns an unpositioned Iterator.
func (m *Map[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{m.t.MakeIter()}
}

// Begin returns an Iterator at the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m.t.Begin()}
}

// End returns the past-the-end Iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m.t.End()}
}

// Last returns an Iterator at the largest key.
func (m *Map[K, V]) Last() Iterator[K, V] {
	it := m.MakeIter()
	it.Last()
	return it
}

func (it *Iterator[K, V]) First() { it.it.First() }

func (it *Iterator[K, V]) Last() { it.it.Last() }

func (it *Iterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }

func (it *Iterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }

func (it *Iterator[K, V]) Next() { it.it.Next() }

func (it *Iterator[K, V]) Prev() { it.it.Prev() }

func (it Iterator[K, V]) Valid() bool { return it.it.Valid() }

func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool { return it.it.Equal(o.it) }

func (it Iterator[K, V]) Key() K { return it.it.Key() }

func (it Iterator[K, V]) Value() V { return it.it.Value() }

func (it Iterator[K, V]) ValuePtr() *V { return it.it.ValuePtr() }

func (it Iterator[K, V]) SetValue(v V) { it.it.SetValue(v) }
