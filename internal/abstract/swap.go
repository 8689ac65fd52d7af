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

// swapNodes exchanges the positions of a and b in the tree by relinking.
// Keys, values and balance factors stay with their nodes.
//
// When one node is the direct child of the other, the child takes the
// parent's slot and the parent drops into the child's:
//
//          p                p
//          |                |
//          a                b
//         / \              / \
//        b   y     =>     a   y
//       / \              / \
//      u   v            u   v
//
func (t *Tree[K, V]) swapNodes(a, b *node[K, V]) {
	if a == b || a == nil || b == nil {
		return
	}
	if b.parent != a && a.parent == b {
		a, b = b, a
	}
	ap, al, ar := a.parent, a.left, a.right
	bl, br := b.left, b.right
	aWasLeft := a.isLeftChild()

	if b.parent == a {
		b.parent = ap
		if al == b {
			b.left, b.right = a, ar
			if ar != nil {
				ar.parent = b
			}
		} else {
			b.left, b.right = al, a
			if al != nil {
				al.parent = b
			}
		}
		a.parent = b
		a.left, a.right = bl, br
		setParent(bl, a)
		setParent(br, a)
		t.replaceChild(ap, aWasLeft, b)
		return
	}

	bp := b.parent
	bWasLeft := b.isLeftChild()
	a.parent, b.parent = bp, ap
	a.left, a.right = bl, br
	b.left, b.right = al, ar
	setParent(bl, a)
	setParent(br, a)
	setParent(al, b)
	setParent(ar, b)
	t.replaceChild(ap, aWasLeft, b)
	t.replaceChild(bp, bWasLeft, a)
}

func setParent[K, V any](n, parent *node[K, V]) {
	if n != nil {
		n.parent = parent
	}
}
