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

// Iterator is responsible for search and traversal within a Tree. Its
// position is the identity of the current node alone; stepping follows
// parent and child links, so no stack is kept.
type Iterator[K, V any] struct {
	t *Tree[K, V]
	n *node[K, V]
}

// Reset moves the iterator to the past-the-end position.
func (i *Iterator[K, V]) Reset() {
	i.n = nil
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	i.Reset()
	for n := i.t.root; n != nil; {
		c := i.t.cfg.cmp(key, n.key)
		switch {
		case c == 0:
			i.n = n
			return
		case c < 0:
			i.n = n
			n = n.left
		default:
			n = n.right
		}
	}
}

// SeekLT seeks to the last key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	i.Reset()
	for n := i.t.root; n != nil; {
		if i.t.cfg.cmp(key, n.key) <= 0 {
			n = n.left
		} else {
			i.n = n
			n = n.right
		}
	}
}

// First seeks to the first key in the Tree.
func (i *Iterator[K, V]) First() {
	i.n = i.t.root.leftmost()
}

// Last seeks to the last key in the Tree.
func (i *Iterator[K, V]) Last() {
	i.n = i.t.root.rightmost()
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V]) Next() {
	if i.n == nil {
		return
	}
	i.n = i.n.successor()
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V]) Prev() {
	if i.n == nil {
		return
	}
	i.n = i.n.predecessor()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i Iterator[K, V]) Valid() bool {
	return i.n != nil
}

// Equal returns true if both iterators are positioned at the same entry or
// are both past-the-end.
func (i Iterator[K, V]) Equal(o Iterator[K, V]) bool {
	return i.n == o.n
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i Iterator[K, V]) Key() K {
	return i.n.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i Iterator[K, V]) Value() V {
	return i.n.value
}

// ValuePtr returns a reference to the value at the Iterator's current
// position. It is illegal to call ValuePtr if the Iterator is not valid.
func (i Iterator[K, V]) ValuePtr() *V {
	return &i.n.value
}

// SetValue overwrites the value at the Iterator's current position. It is
// illegal to call SetValue if the Iterator is not valid.
func (i Iterator[K, V]) SetValue(v V) {
	i.n.value = v
}

func (i *Iterator[K, V]) lowLevel() *LowLevelIterator[K, V] {
	return (*LowLevelIterator[K, V])(i)
}
