package avl

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func collect[K, V any](m *Map[K, V]) []K {
	var ks []K
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		ks = append(ks, it.Key())
	}
	return ks
}

func TestMap(t *testing.T) {
	re := require.New(t)
	m := New[int, struct{}](WithLogger(zap.NewNop()))
	re.True(m.IsEmpty())
	m.Insert(2, struct{}{})
	m.Insert(12, struct{}{})
	m.Insert(1, struct{}{})

	iter := m.MakeIter()
	iter.First()
	for _, exp := range []int{1, 2, 12} {
		re.Equal(exp, iter.Key())
		iter.Next()
	}
	re.False(iter.Valid())
	re.Equal(3, m.Len())
	re.False(m.IsEmpty())
}

func TestMapScenario(t *testing.T) {
	re := require.New(t)
	m := New[int, float64](WithLogger(zap.NewNop()))
	for _, k := range []int{43, -109, 107, -140, 14, 51, 122, 16, 48, 86, 135, 83, 88} {
		m.Insert(k, 1.0)
	}
	re.True(m.IsBalanced())
	re.NoError(m.Verify())
	re.Equal([]int{-140, -109, 14, 16, 43, 48, 51, 83, 86, 88, 107, 122, 135}, collect(m))

	m.Remove(-140)
	re.True(m.IsBalanced())
	re.NoError(m.Verify())
	re.Equal([]int{-109, 14, 16, 43, 48, 51, 83, 86, 88, 107, 122, 135}, collect(m))
}

func TestMapOverwrite(t *testing.T) {
	re := require.New(t)
	m := MakeMap[string, int](strings.Compare, WithLogger(zap.NewNop()))
	re.False(m.Insert("a", 1))
	re.False(m.Insert("b", 2))
	it := m.Find("a")
	re.True(m.Insert("a", 3))
	re.Equal(2, m.Len())
	re.Equal([]string{"a", "b"}, collect(m))

	// The iterator still refers to the same entry and sees the new value.
	re.True(it.Valid())
	re.Equal(3, it.Value())
	v, err := m.Get("a")
	re.NoError(err)
	re.Equal(3, v)
}

func TestMapIndexedAccess(t *testing.T) {
	re := require.New(t)
	m := New[string, []string](WithLogger(zap.NewNop()))
	m.Insert("fruit", nil)

	p, err := m.At("fruit")
	re.NoError(err)
	*p = append(*p, "apple", "pear")
	v, err := m.Get("fruit")
	re.NoError(err)
	re.Equal([]string{"apple", "pear"}, v)

	_, err = m.Get("vegetable")
	re.True(ErrKeyNotFound.Equal(err))
	p, err = m.At("vegetable")
	re.Nil(p)
	re.True(ErrKeyNotFound.Equal(err))
	re.Contains(err.Error(), "vegetable")

	// Find and Remove report absence without an error.
	re.True(m.Find("vegetable").Equal(m.End()))
	re.False(m.Remove("vegetable"))
}

func TestMapRemoveAll(t *testing.T) {
	re := require.New(t)
	m := New[int, int](WithLogger(zap.NewNop()))
	const n = 300
	for _, k := range rand.Perm(n) {
		m.Insert(k, k)
	}
	remaining := n
	for _, k := range rand.Perm(n) {
		re.True(m.Remove(k))
		remaining--
		re.Equal(remaining, m.Len())
		re.True(m.IsBalanced())
		re.NoError(m.Verify())
		prev := -1
		for k := range m.All() {
			re.Greater(k, prev)
			prev = k
		}
	}
	re.True(m.IsEmpty())
	re.True(m.Begin().Equal(m.End()))
}

func TestMapClear(t *testing.T) {
	re := require.New(t)
	m := New[int, int](WithLogger(zap.NewNop()), WithNodePool(false))
	for k := 0; k < 100; k++ {
		m.Insert(k, k)
	}
	m.Clear()
	re.True(m.IsEmpty())
	re.Equal(0, m.Len())
	re.Equal(0, m.Height())
	m.Insert(7, 7)
	re.Equal([]int{7}, collect(m))
}

func TestMapReverse(t *testing.T) {
	re := require.New(t)
	m := New[int, int](WithLogger(zap.NewNop()))
	for _, k := range rand.Perm(50) {
		m.Insert(k, k)
	}
	var got []int
	for it := m.Last(); it.Valid(); it.Prev() {
		got = append(got, it.Key())
	}
	re.Len(got, 50)
	for i, k := range got {
		re.Equal(49-i, k)
	}

	it := m.MakeIter()
	it.SeekGE(25)
	re.Equal(25, it.Key())
	it.SeekLT(25)
	re.Equal(24, it.Key())
}

func TestMapLowLevel(t *testing.T) {
	re := require.New(t)
	m := New[int, int](WithLogger(zap.NewNop()))
	for k := 1; k <= 7; k++ {
		m.Insert(k, k)
	}
	// Sequential insertion of 2^k-1 keys yields a perfect tree.
	ll := m.LowLevel()
	re.Equal(4, ll.Key())
	ll.DescendLeft()
	re.Equal(2, ll.Key())
	ll.DescendRight()
	re.Equal(3, ll.Key())
	re.Equal(0, ll.Balance())
	ll.Ascend()
	ll.Ascend()
	ll.DescendRight()
	re.Equal(6, ll.Key())
}
