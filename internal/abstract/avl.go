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

// AVLTree is a Tree which restores the AVL height-balance invariant after
// every insertion and removal. Each node carries a balance factor, its
// right height minus its left height, which lies in [-1, 1] whenever no
// operation is in progress.
//
// AVLTree is not safe for concurrent use.
type AVLTree[K, V any] struct {
	Tree[K, V]
}

// MakeAVLTree returns an empty AVLTree using the provided configuration.
func MakeAVLTree[K, V any](cfg Config[K]) AVLTree[K, V] {
	return AVLTree[K, V]{Tree: MakeTree[K, V](cfg)}
}

// Insert adds the entry to the tree, overwriting the value if the key is
// already present. It returns true if an existing value was replaced, in
// which case the structure of the tree is unchanged.
func (t *AVLTree[K, V]) Insert(k K, v V) (replaced bool) {
	n, created := t.insert(k, v)
	if !created {
		return true
	}
	p := n.parent
	if p == nil {
		return false
	}
	if p.left == n {
		p.balance--
	} else {
		p.balance++
	}
	if p.balance != 0 {
		t.insertFix(p, n)
	}
	return false
}

// insertFix is called after the subtree rooted at p, the parent of n, grew
// taller. It walks up adjusting balance factors until the growth is
// absorbed or a rotation removes it.
func (t *AVLTree[K, V]) insertFix(p, n *node[K, V]) {
	for {
		g := p.parent
		if g == nil {
			return
		}
		if p == g.left {
			g.balance--
			switch g.balance {
			case 0:
				return
			case -1:
				p, n = g, p
				continue
			case -2:
				if n == p.left {
					t.rotateRight(g)
					p.balance, g.balance = 0, 0
				} else {
					t.rotateLeft(p)
					t.rotateRight(g)
					fixDoubleRotation(n)
				}
				return
			}
		} else {
			g.balance++
			switch g.balance {
			case 0:
				return
			case 1:
				p, n = g, p
				continue
			case 2:
				if n == p.right {
					t.rotateLeft(g)
					p.balance, g.balance = 0, 0
				} else {
					t.rotateRight(p)
					t.rotateLeft(g)
					fixDoubleRotation(n)
				}
				return
			}
		}
		corrupted("balance factor %d at %v after insertion", g.balance, g.key)
	}
}

// Remove removes the entry for k. It returns false, leaving the tree
// untouched, if there is no such entry.
func (t *AVLTree[K, V]) Remove(k K) (removed bool) {
	n := t.find(k)
	if n == nil {
		return false
	}
	parent, wasLeft := t.extract(n, t.swapNodesAndBalance)
	t.release(n)
	if parent == nil {
		return true
	}
	if wasLeft {
		t.removeFix(parent, 1)
	} else {
		t.removeFix(parent, -1)
	}
	return true
}

// swapNodesAndBalance swaps two nodes' positions along with their balance
// factors, so that each position keeps the balance factor describing it.
func (t *AVLTree[K, V]) swapNodesAndBalance(a, b *node[K, V]) {
	t.swapNodes(a, b)
	a.balance, b.balance = b.balance, a.balance
}

// removeFix is called after the child subtree of n on one side became
// shorter. diff is +1 if it was the left subtree and -1 if it was the right.
// It walks up for as long as subtree heights keep shrinking.
func (t *AVLTree[K, V]) removeFix(n *node[K, V], diff int8) {
	for n != nil {
		p := n.parent
		var pdiff int8
		if p != nil {
			if p.left == n {
				pdiff = 1
			} else {
				pdiff = -1
			}
		}

		n.balance += diff
		switch n.balance {
		case -1, 1:
			// Height unchanged.
			return
		case 0:
			// Height shrank by one; keep going.
		case -2:
			c := n.left
			switch c.balance {
			case -1:
				t.rotateRight(n)
				n.balance, c.balance = 0, 0
			case 0:
				t.rotateRight(n)
				n.balance, c.balance = -1, 1
				return
			case 1:
				g := c.right
				t.rotateLeft(c)
				t.rotateRight(n)
				fixDoubleRotation(g)
			default:
				corrupted("balance factor %d at %v", c.balance, c.key)
			}
		case 2:
			c := n.right
			switch c.balance {
			case 1:
				t.rotateLeft(n)
				n.balance, c.balance = 0, 0
			case 0:
				t.rotateLeft(n)
				n.balance, c.balance = 1, -1
				return
			case -1:
				g := c.left
				t.rotateRight(c)
				t.rotateLeft(n)
				fixDoubleRotation(g)
			default:
				corrupted("balance factor %d at %v", c.balance, c.key)
			}
		default:
			corrupted("balance factor %d at %v after removal", n.balance, n.key)
		}
		n, diff = p, pdiff
	}
}

// fixDoubleRotation sets balance factors after a double rotation which made
// pivot the root of the rotated subtree. pivot's balance factor still holds
// its value from before the rotations, which determines which of the new
// children received the shorter of its former subtrees:
//
//	pivot  | left | right
//	-------+------+------
//	  -1   |   0  |  +1
//	   0   |   0  |   0
//	  +1   |  -1  |   0
//
func fixDoubleRotation[K, V any](pivot *node[K, V]) {
	l, r := pivot.left, pivot.right
	switch pivot.balance {
	case -1:
		l.balance, r.balance = 0, 1
	case 0:
		l.balance, r.balance = 0, 0
	case 1:
		l.balance, r.balance = -1, 0
	default:
		corrupted("balance factor %d at pivot %v", pivot.balance, pivot.key)
	}
	pivot.balance = 0
}
