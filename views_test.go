package slotmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Iter_YieldsLivePrefixInOrder(t *testing.T) {
	sm := newFixed(t, 8)

	for i := uint64(0); i < 5; i++ {
		_, err := sm.Add(v(i))
		require.NoError(t, err)
	}

	var seen []value
	for p := range sm.Iter() {
		seen = append(seen, *p)
	}

	assert.Equal(t, sm.Slice(), seen)
}

func Test_GetMut_CanMutateThroughPointer(t *testing.T) {
	sm := newFixed(t, 4)

	k, err := sm.Add(v(1))
	require.NoError(t, err)

	p, ok := sm.GetMut(k)
	require.True(t, ok)

	p.Tag = 999

	got, ok := sm.Get(k)
	require.True(t, ok)
	assert.Equal(t, uint64(999), got.Tag)
}

func Test_Drain_YieldsAllValuesThenClears(t *testing.T) {
	sm := newFixed(t, 8)

	var want []value
	for i := uint64(0); i < 5; i++ {
		want = append(want, v(i))

		_, err := sm.Add(v(i))
		require.NoError(t, err)
	}

	var got []value
	for val := range sm.Drain() {
		got = append(got, val)
	}

	assert.Equal(t, want, got)
	assert.Equal(t, 0, sm.Len())
	assert.Empty(t, sm.Slice())
}

func Test_Drain_EarlyExitStillClears(t *testing.T) {
	sm := newFixed(t, 8)

	for i := uint64(0); i < 5; i++ {
		_, err := sm.Add(v(i))
		require.NoError(t, err)
	}

	count := 0
	for range sm.Drain() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, sm.Len(), "abandoning a drain early must still leave the map cleared")
}

func Test_InvalidateKeys_RejectsAllOutstandingKeys(t *testing.T) {
	sm := newFixed(t, 4)

	ka, err := sm.Add(v(1))
	require.NoError(t, err)

	kb, err := sm.Add(v(2))
	require.NoError(t, err)

	sm.InvalidateKeys()

	_, ok := sm.Get(ka)
	assert.False(t, ok)

	_, ok = sm.Get(kb)
	assert.False(t, ok)

	// Contents and live prefix survive invalidation.
	assert.Equal(t, 2, sm.Len())
	assert.ElementsMatch(t, []value{v(1), v(2)}, sm.Slice())
}

func Test_AssignNewKeys_ReissuesWorkingKeysInSliceOrder(t *testing.T) {
	sm := newFixed(t, 4)

	_, err := sm.Add(v(1))
	require.NoError(t, err)

	old2, err := sm.Add(v(2))
	require.NoError(t, err)

	// Create a forwarding indirection so AssignNewKeys must scrub it.
	_, err = sm.Add(v(3))
	require.NoError(t, err)

	_, ok := sm.Remove(old2)
	require.True(t, ok)
	require.Equal(t, 1, sm.IndirectCount())

	snapshot := sm.Slice()
	want := make([]value, len(snapshot))
	copy(want, snapshot)

	var fresh []value
	for k := range sm.AssignNewKeys() {
		val, ok := sm.Get(k)
		require.True(t, ok)
		fresh = append(fresh, val)
	}

	assert.Equal(t, want, fresh)
	assert.Equal(t, 0, sm.IndirectCount(), "AssignNewKeys must scrub stale tail indirections")
}
