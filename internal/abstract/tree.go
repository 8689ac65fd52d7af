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

import (
	"iter"

	"go.uber.org/zap"
)

// Tree is an unbalanced binary search tree with parent links. It provides
// the structural primitives AVLTree balances on top of: descent, leaf
// insertion, node swapping, rotation and single-child splicing.
//
// Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	root   *node[K, V]
	length int
	cfg    Config[K]
	np     *nodePool[K, V]
}

// MakeTree returns an empty Tree using the provided configuration.
func MakeTree[K, V any](cfg Config[K]) Tree[K, V] {
	t := Tree[K, V]{cfg: cfg}
	if cfg.pooling {
		t.np = getNodePool[K, V]()
	}
	return t
}

// Config returns the tree's config.
func (t *Tree[K, V]) Config() *Config[K] {
	return &t.cfg
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// IsEmpty returns true if the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

func (t *Tree[K, V]) newNode(k K, v V, parent *node[K, V]) *node[K, V] {
	var n *node[K, V]
	if t.np != nil {
		n = t.np.getNode()
	} else {
		n = new(node[K, V])
	}
	n.key, n.value, n.parent = k, v, parent
	return n
}

func (t *Tree[K, V]) release(n *node[K, V]) {
	if t.np != nil {
		t.np.putNode(n)
		return
	}
	*n = node[K, V]{}
}

// find returns the node holding k, or nil.
func (t *Tree[K, V]) find(k K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cfg.cmp(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert overwrites the value of an existing entry in place or links a new
// leaf below the insertion point found by descent. It never rebalances.
func (t *Tree[K, V]) insert(k K, v V) (n *node[K, V], created bool) {
	if t.root == nil {
		t.root = t.newNode(k, v, nil)
		t.length++
		return t.root, true
	}
	cur := t.root
	for {
		c := t.cfg.cmp(k, cur.key)
		switch {
		case c == 0:
			cur.value = v
			return cur, false
		case c < 0:
			if cur.left == nil {
				cur.left = t.newNode(k, v, cur)
				t.length++
				return cur.left, true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = t.newNode(k, v, cur)
				t.length++
				return cur.right, true
			}
			cur = cur.right
		}
	}
}

// Insert adds the entry to the tree, overwriting the value if the key is
// already present. It returns true if an existing value was replaced.
func (t *Tree[K, V]) Insert(k K, v V) (replaced bool) {
	_, created := t.insert(k, v)
	return !created
}

// Remove removes the entry for k. It returns false, leaving the tree
// untouched, if there is no such entry.
func (t *Tree[K, V]) Remove(k K) (removed bool) {
	n := t.find(k)
	if n == nil {
		return false
	}
	t.extract(n, t.swapNodes)
	t.release(n)
	return true
}

// extract unlinks n from the tree. If n has two children it is first moved
// into the position of its in-order predecessor using swap, which leaves it
// with at most one child. The sole child, if any, is promoted into n's slot.
// extract returns the parent n had when it was unlinked and whether n was
// that parent's left child. The caller releases n.
func (t *Tree[K, V]) extract(
	n *node[K, V], swap func(a, b *node[K, V]),
) (parent *node[K, V], wasLeft bool) {
	if n.left != nil && n.right != nil {
		swap(n.predecessor(), n)
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	parent, wasLeft = n.parent, n.isLeftChild()
	if child != nil {
		child.parent = parent
	}
	t.replaceChild(parent, wasLeft, child)
	t.length--
	return parent, wasLeft
}

// replaceChild points the slot of parent on the given side at n, or the
// root if parent is nil. It does not touch n.parent.
func (t *Tree[K, V]) replaceChild(parent *node[K, V], left bool, n *node[K, V]) {
	switch {
	case parent == nil:
		t.root = n
	case left:
		parent.left = n
	default:
		parent.right = n
	}
}

// Clear removes every entry, releasing each node exactly once.
func (t *Tree[K, V]) Clear() {
	var s nodeStack[K, V]
	if t.root != nil {
		s.push(t.root)
	}
	var released int
	for s.len() > 0 {
		n := s.pop()
		if n.left != nil {
			s.push(n.left)
		}
		if n.right != nil {
			s.push(n.right)
		}
		t.release(n)
		released++
	}
	t.root = nil
	t.length = 0
	t.cfg.Logger.Debug("tree cleared", zap.Int("released", released))
}

// Get returns the value stored for k, or an ErrKeyNotFound error.
func (t *Tree[K, V]) Get(k K) (v V, err error) {
	n := t.find(k)
	if n == nil {
		return v, ErrKeyNotFound.GenWithStackByArgs(k)
	}
	return n.value, nil
}

// At returns a reference to the value stored for k, through which the value
// may be modified in place, or an ErrKeyNotFound error.
func (t *Tree[K, V]) At(k K) (*V, error) {
	n := t.find(k)
	if n == nil {
		return nil, ErrKeyNotFound.GenWithStackByArgs(k)
	}
	return &n.value, nil
}

// Find returns an Iterator positioned at the entry for k. The Iterator is
// not valid if there is no such entry.
func (t *Tree[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{t: t, n: t.find(k)}
}

// MakeIter returns a new Iterator object, unpositioned. It is not safe to
// continue using an Iterator after the entry it is positioned at is
// removed or the tree is cleared.
func (t *Tree[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{t: t}
}

// Begin returns an Iterator positioned at the smallest key.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	it := t.MakeIter()
	it.First()
	return it
}

// End returns the past-the-end Iterator. It is never valid.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return t.MakeIter()
}

// All returns a sequence of all entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.root.leftmost(); n != nil; n = n.successor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
