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

// Rotations relink three nodes and never touch balance factors; callers set
// those for the case they are resolving.
//
//          |                         |
//          n     rotateLeft(n)       r
//         / \    ------------>      / \
//        x   r                     n   z
//           / \  <------------    / \
//          y   z  rotateRight(r) x   y
//

// rotateLeft promotes n's right child into n's position.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) {
	r := n.right
	if r == nil {
		corrupted("rotateLeft on node %v without a right child", n.key)
	}
	p, wasLeft := n.parent, n.isLeftChild()
	n.right = r.left
	setParent(r.left, n)
	r.left = n
	n.parent = r
	r.parent = p
	t.replaceChild(p, wasLeft, r)
}

// rotateRight promotes n's left child into n's position.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) {
	l := n.left
	if l == nil {
		corrupted("rotateRight on node %v without a left child", n.key)
	}
	p, wasLeft := n.parent, n.isLeftChild()
	n.left = l.right
	setParent(l.right, n)
	l.right = n
	n.parent = l
	l.parent = p
	t.replaceChild(p, wasLeft, l)
}
