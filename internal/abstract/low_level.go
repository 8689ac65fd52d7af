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

package abstract

// LowLevelIterator navigates the tree along its links rather than in key
// order. It is read-only and exists for renderers and debugging tools which
// need to see the shape of the tree.
type LowLevelIterator[K, V any] Iterator[K, V]

// LowLevel converts an iterator to a LowLevelIterator at the same node.
func LowLevel[K, V any](it *Iterator[K, V]) *LowLevelIterator[K, V] {
	return it.lowLevel()
}

// Root moves to the root of the tree. The iterator is invalid if the tree
// is empty.
func (i *LowLevelIterator[K, V]) Root() {
	i.n = i.t.root
}

// Valid returns whether the iterator is positioned at a node.
func (i *LowLevelIterator[K, V]) Valid() bool {
	return i.n != nil
}

// Key returns the key of the current node.
func (i *LowLevelIterator[K, V]) Key() K {
	return i.n.key
}

// Value returns the value of the current node.
func (i *LowLevelIterator[K, V]) Value() V {
	return i.n.value
}

// Balance returns the stored balance factor of the current node. It is
// always zero in an unbalanced Tree.
func (i *LowLevelIterator[K, V]) Balance() int {
	return int(i.n.balance)
}

// HasLeft returns true if the current node has a left child.
func (i *LowLevelIterator[K, V]) HasLeft() bool {
	return i.n.left != nil
}

// HasRight returns true if the current node has a right child.
func (i *LowLevelIterator[K, V]) HasRight() bool {
	return i.n.right != nil
}

// IsRoot returns true if the current node has no parent.
func (i *LowLevelIterator[K, V]) IsRoot() bool {
	return i.n.parent == nil
}

// DescendLeft moves to the left child. It is illegal to call if there is
// no such child.
func (i *LowLevelIterator[K, V]) DescendLeft() {
	i.n = i.n.left
}

// DescendRight moves to the right child. It is illegal to call if there is
// no such child.
func (i *LowLevelIterator[K, V]) DescendRight() {
	i.n = i.n.right
}

// Ascend moves to the parent of the current node. It is illegal to call at
// the root.
func (i *LowLevelIterator[K, V]) Ascend() {
	i.n = i.n.parent
}

// Depth returns the number of nodes above the current node.
func (i *LowLevelIterator[K, V]) Depth() int {
	var d int
	for p := i.n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// LowLevel returns a LowLevelIterator positioned at the root of the tree.
func (t *Tree[K, V]) LowLevel() *LowLevelIterator[K, V] {
	it := t.MakeIter()
	ll := LowLevel(&it)
	ll.Root()
	return ll
}
