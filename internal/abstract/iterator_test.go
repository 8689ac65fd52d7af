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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	re := require.New(t)
	tree := makeIntAVLTree()
	re.True(tree.Begin().Equal(tree.End()))

	const n = 200
	for _, k := range rand.Perm(n) {
		tree.Insert(k, k)
	}
	// Two passes over an unmodified tree see the same ascending keys.
	for pass := 0; pass < 2; pass++ {
		var i int
		for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
			re.Equal(i, it.Key())
			i++
		}
		re.Equal(n, i)
	}

	it := tree.MakeIter()
	it.Last()
	for i := n - 1; i >= 0; i-- {
		re.True(it.Valid())
		re.Equal(i, it.Key())
		it.Prev()
	}
	re.False(it.Valid())
	it.Prev()
	re.False(it.Valid())
	it.Next()
	re.False(it.Valid())
}

func TestIteratorReadOnlyOnResult(t *testing.T) {
	re := require.New(t)
	tree := makeIntAVLTree()
	for k := 0; k < 5; k++ {
		tree.Insert(k, k*10)
	}
	// Read-only accessors work directly on returned iterators.
	re.True(tree.Find(3).Valid())
	re.Equal(3, tree.Find(3).Key())
	re.Equal(30, tree.Find(3).Value())
	re.True(tree.Find(0).Equal(tree.Begin()))
	re.True(tree.Find(7).Equal(tree.End()))
	re.False(tree.End().Valid())
	tree.Find(4).SetValue(41)
	*tree.Find(4).ValuePtr()++
	v, err := tree.Get(4)
	re.NoError(err)
	re.Equal(42, v)
}

func TestIteratorWrite(t *testing.T) {
	re := require.New(t)
	tree := makeIntAVLTree()
	for k := 0; k < 10; k++ {
		tree.Insert(k, 0)
	}
	for it := tree.Begin(); it.Valid(); it.Next() {
		it.SetValue(it.Key() * 2)
		*it.ValuePtr() += 1
	}
	for k := 0; k < 10; k++ {
		v, err := tree.Get(k)
		re.NoError(err)
		re.Equal(2*k+1, v)
	}
}

func TestIteratorSeek(t *testing.T) {
	re := require.New(t)
	tree := makeIntAVLTree()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, k)
	}
	it := tree.MakeIter()
	for _, tc := range []struct {
		key      int
		ge, lt   int
		geV, ltV bool
	}{
		{key: 5, ge: 10, geV: true},
		{key: 10, ge: 10, geV: true},
		{key: 11, ge: 20, geV: true, lt: 10, ltV: true},
		{key: 30, ge: 30, geV: true, lt: 20, ltV: true},
		{key: 50, ge: 50, geV: true, lt: 40, ltV: true},
		{key: 51, lt: 50, ltV: true},
	} {
		it.SeekGE(tc.key)
		re.Equal(tc.geV, it.Valid(), "SeekGE(%d)", tc.key)
		if tc.geV {
			re.Equal(tc.ge, it.Key(), "SeekGE(%d)", tc.key)
		}
		it.SeekLT(tc.key)
		re.Equal(tc.ltV, it.Valid(), "SeekLT(%d)", tc.key)
		if tc.ltV {
			re.Equal(tc.lt, it.Key(), "SeekLT(%d)", tc.key)
		}
	}
}

func TestLowLevelIterator(t *testing.T) {
	re := require.New(t)
	tree := makeIntAVLTree()
	ll := tree.LowLevel()
	re.False(ll.Valid())

	for _, k := range []int{1, 2, 3, 4} {
		tree.Insert(k, k*10)
	}
	ll = tree.LowLevel()
	re.True(ll.Valid())
	re.True(ll.IsRoot())
	re.Equal(2, ll.Key())
	re.Equal(20, ll.Value())
	re.Equal(1, ll.Balance())
	re.Equal(0, ll.Depth())

	re.True(ll.HasLeft())
	ll.DescendLeft()
	re.Equal(1, ll.Key())
	re.False(ll.HasLeft())
	re.False(ll.HasRight())
	re.Equal(1, ll.Depth())
	ll.Ascend()

	ll.DescendRight()
	re.Equal(3, ll.Key())
	re.Equal(1, ll.Balance())
	ll.DescendRight()
	re.Equal(4, ll.Key())
	re.Equal(2, ll.Depth())
	re.False(ll.IsRoot())

	// The low-level view shares its position with ordinary iteration.
	it := tree.Find(3)
	ll = LowLevel(&it)
	ll.DescendRight()
	re.Equal(4, it.Key())
}
