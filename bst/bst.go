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
// Package bst exposes the unbalanced binary search tree which underlies
// package avl. Its height depends on insertion order, so it is mostly useful
// for comparison and for exercising the shared substrate on its own.
package bst

import (
	"cmp"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
	"go.uber.org/zap"
)

// ErrKeyNotFound is returned by Get and At for an absent key.
var ErrKeyNotFound = abstract.ErrKeyNotFound

// ErrInvariantViolated is returned by Verify.
var ErrInvariantViolated = abstract.ErrInvariantViolated

// Option configures a Tree.
type Option = abstract.Option

// WithLogger sets the logger used for Clear and Verify diagnostics.
func WithLogger(l *zap.Logger) Option { return abstract.WithLogger(l) }

// WithNodePool controls whether released nodes are recycled.
func WithNodePool(enabled bool) Option { return abstract.WithNodePool(enabled) }

// Tree is an unbalanced ordered map from K to V.
type Tree[K, V any] struct {
	t abstract.Tree[K, V]
}

// MakeTree returns an empty Tree ordered by cmp.
func MakeTree[K, V any](cmp func(K, K) int, opts ...Option) *Tree[K, V] {
	return &Tree[K, V]{
		t: abstract.MakeTree[K, V](abstract.MakeConfig(cmp, opts...)),
	}
}

// New returns an empty Tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return MakeTree[K, V](cmp.Compare[K], opts...)
}

// Insert maps k to v, reporting whether an existing value was overwritten.
func (t *Tree[K, V]) Insert(k K, v V) (replaced bool) { return t.t.Insert(k, v) }

// Remove removes k, reporting whether it was present.
func (t *Tree[K, V]) Remove(k K) (removed bool) { return t.t.Remove(k) }

// Get returns the value for k, or an ErrKeyNotFound error.
func (t *Tree[K, V]) Get(k K) (V, error) { return t.t.Get(k) }

// At returns a reference to the value for k.
func (t *Tree[K, V]) At(k K) (*V, error) { return t.t.At(k) }

func (t *Tree[K, V]) Clear() { t.t.Clear() }

func (t *Tree[K, V]) IsEmpty() bool { return t.t.IsEmpty() }

func (t *Tree[K, V]) Len() int { return t.t.Len() }

// Height returns the height of the tree. O(n).
func (t *Tree[K, V]) Height() int { return t.t.Height() }

// IsBalanced reports whether the tree happens to satisfy the AVL
// height-balance invariant.
func (t *Tree[K, V]) IsBalanced() bool { return t.t.IsBalanced() }

// Verify checks ordering, parent links and the element count. Balance is
// not required.
func (t *Tree[K, V]) Verify() error { return t.t.Verify(false) }

func (t *Tree[K, V]) All() iter.Seq2[K, V] { return t.t.All() }

func (t *Tree[K, V]) LowLevel() *abstract.LowLevelIterator[K, V] { return t.t.LowLevel() }

// Iterator walks a Tree in key order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

func (t *Tree[K, V]) Find(k K) Iterator[K, V] { return Iterator[K, V]{t.t.Find(k)} }

func (t *Tree[K, V]) MakeIter() Iterator[K, V] { return Iterator[K, V]{t.t.MakeIter()} }

func (t *Tree[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{t.t.Begin()} }

func (t *Tree[K, V]) End() Iterator[K, V] { return Iterator[K, V]{t.t.End()} }

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
