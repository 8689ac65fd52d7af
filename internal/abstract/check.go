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
	"fmt"

	"go.uber.org/zap"
)

// unbalanced is returned by checkBalanced for a subtree which violates the
// height-balance invariant somewhere.
const unbalanced = -1

// IsBalanced reports whether every node's subtrees differ in height by at
// most one. Heights are measured, not derived from balance factors. O(n).
func (t *Tree[K, V]) IsBalanced() bool {
	return checkBalanced(t.root) != unbalanced
}

// checkBalanced returns the height of the subtree rooted at n, or
// unbalanced.
func checkBalanced[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l := checkBalanced(n.left)
	if l == unbalanced {
		return unbalanced
	}
	r := checkBalanced(n.right)
	if r == unbalanced {
		return unbalanced
	}
	if l-r > 1 || r-l > 1 {
		return unbalanced
	}
	return max(l, r) + 1
}

// Verify checks every structural invariant of the tree: key order, parent
// links, the entry count and, if balanced is true, height balance and the
// consistency of stored balance factors. It returns an ErrInvariantViolated
// error describing the first violation found, which is also logged.
func (t *Tree[K, V]) Verify(balanced bool) error {
	v := verifier[K, V]{t: t, balanced: balanced}
	if t.root != nil && t.root.parent != nil {
		return v.fail(t.root, 0, "root has a parent")
	}
	if _, err := v.walk(t.root, nil, nil, 0); err != nil {
		return err
	}
	if v.count != t.length {
		t.cfg.Logger.Warn("tree invariant violated",
			zap.String("violation", "length"),
			zap.Int("counted", v.count),
			zap.Int("length", t.length))
		return ErrInvariantViolated.FastGenByArgs(
			fmt.Sprintf("length is %d but %d nodes are reachable", t.length, v.count))
	}
	return nil
}

// Verify checks the invariants of an AVL tree, see Tree.Verify.
func (t *AVLTree[K, V]) Verify() error {
	return t.Tree.Verify(true /* balanced */)
}

type verifier[K, V any] struct {
	t        *Tree[K, V]
	balanced bool
	count    int
}

// walk returns the height of the subtree rooted at n, whose keys must lie
// strictly between lo and hi when those are set.
func (v *verifier[K, V]) walk(n, lo, hi *node[K, V], depth int) (int, error) {
	if n == nil {
		return 0, nil
	}
	v.count++
	cmp := v.t.cfg.cmp
	if lo != nil && cmp(lo.key, n.key) >= 0 {
		return 0, v.fail(n, depth, fmt.Sprintf("key %v not greater than %v", n.key, lo.key))
	}
	if hi != nil && cmp(n.key, hi.key) >= 0 {
		return 0, v.fail(n, depth, fmt.Sprintf("key %v not less than %v", n.key, hi.key))
	}
	if n.left != nil && n.left.parent != n {
		return 0, v.fail(n, depth, "left child's parent link is wrong")
	}
	if n.right != nil && n.right.parent != n {
		return 0, v.fail(n, depth, "right child's parent link is wrong")
	}
	l, err := v.walk(n.left, lo, n, depth+1)
	if err != nil {
		return 0, err
	}
	r, err := v.walk(n.right, n, hi, depth+1)
	if err != nil {
		return 0, err
	}
	if v.balanced {
		if r-l > 1 || l-r > 1 {
			return 0, v.fail(n, depth, fmt.Sprintf("subtree heights %d and %d", l, r))
		}
		if int(n.balance) != r-l {
			return 0, v.fail(n, depth, fmt.Sprintf("balance factor %d, heights differ by %d", n.balance, r-l))
		}
	} else if n.balance != 0 {
		return 0, v.fail(n, depth, fmt.Sprintf("balance factor %d in unbalanced tree", n.balance))
	}
	return max(l, r) + 1, nil
}

func (v *verifier[K, V]) fail(n *node[K, V], depth int, violation string) error {
	v.t.cfg.Logger.Warn("tree invariant violated",
		zap.String("violation", violation),
		zap.Any("key", n.key),
		zap.Int("balance", int(n.balance)),
		zap.Int("depth", depth))
	return ErrInvariantViolated.FastGenByArgs(violation)
}
