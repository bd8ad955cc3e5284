package id

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateFromEmpty(t *testing.T) {
	got := Allocate(map[int32]bool{}, 3)
	require.Equal(t, []int32{1, 2, 3}, got)
}

func TestAllocateSkipsUsed(t *testing.T) {
	got := Allocate(map[int32]bool{1: true, 3: true}, 3)
	require.Equal(t, []int32{2, 4, 5}, got)
}

func TestAllocateReusesFreedGap(t *testing.T) {
	// mirrors spec.md's documented behaviour: a deleted sibling's ID is
	// eligible for reuse by any new sibling within the same build.
	got := Allocate(map[int32]bool{1: true, 3: true, 4: true}, 1)
	require.Equal(t, []int32{2}, got)
}

func TestAllocateZeroPending(t *testing.T) {
	got := Allocate(map[int32]bool{1: true}, 0)
	require.Empty(t, got)
}
