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

// node is a cell of the tree. The parent pointer is a back-reference used
// for upward traversal and relinking; left and right are owned by the node.
//
// balance is right height minus left height. It is only maintained by
// AVLTree and stays zero in a plain Tree.
type node[K, V any] struct {
	parent, left, right *node[K, V]
	balance             int8
	key                 K
	value               V
}

func (n *node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// leftmost returns the minimum of the subtree rooted at n, or nil if n is
// nil.
func (n *node[K, V]) leftmost() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// predecessor returns the node immediately preceding n in key order, or nil
// if n is the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for c, p := n, n.parent; p != nil; c, p = p, p.parent {
		if p.right == c {
			return p
		}
	}
	return nil
}

// successor returns the node immediately following n in key order, or nil
// if n is the maximum.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for c, p := n, n.parent; p != nil; c, p = p, p.parent {
		if p.left == c {
			return p
		}
	}
	return nil
}
