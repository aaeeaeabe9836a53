// Copyright 2024 The fixedstack Authors
// This file is part of the fixedstack library.
//
// The fixedstack library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The fixedstack library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the fixedstack library. If not, see <http://www.gnu.org/licenses/>.

package stack_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotloop/fixedstack/stack"
)

func TestNew(t *testing.T) {
	tests := []struct {
		capacity int
		wantErr  error
	}{
		{capacity: -1, wantErr: stack.ErrInvalidCapacity},
		{capacity: 0, wantErr: stack.ErrInvalidCapacity},
		{capacity: 1},
		{capacity: 1024},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("capacity=%d", tt.capacity), func(t *testing.T) {
			st, err := stack.New[int32](tt.capacity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, st)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.capacity, st.Cap())
			require.Zero(t, st.Len())
			require.True(t, st.Empty())
		})
	}
}

// Pushing n values and popping them all back must yield the pushed
// sequence reversed, for any push count up to the capacity.
func TestPushPopOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, capacity := range []int{1, 2, 7, 64, 1000} {
		for _, n := range []int{0, 1, capacity / 2, capacity} {
			t.Run(fmt.Sprintf("capacity=%d/pushes=%d", capacity, n), func(t *testing.T) {
				st, err := stack.New[int32](capacity)
				require.NoError(t, err)

				pushed := make([]int32, n)
				for i := range pushed {
					pushed[i] = rng.Int31()
					require.NoError(t, st.Push(pushed[i]))
				}
				require.Equal(t, n, st.Len())

				popped := make([]int32, 0, n)
				for !st.Empty() {
					v, err := st.Pop()
					require.NoError(t, err)
					popped = append(popped, v)
				}
				want := make([]int32, 0, n)
				for i := n - 1; i >= 0; i-- {
					want = append(want, pushed[i])
				}
				if diff := cmp.Diff(want, popped); diff != "" {
					t.Errorf("pop sequence mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestEmptyFull(t *testing.T) {
	st, err := stack.New[int32](3)
	require.NoError(t, err)

	require.True(t, st.Empty())
	require.False(t, st.Full())

	for i := int32(0); i < 3; i++ {
		require.NoError(t, st.Push(i))
	}
	require.False(t, st.Empty())
	require.True(t, st.Full())

	for !st.Empty() {
		_, err := st.Pop()
		require.NoError(t, err)
	}
	require.True(t, st.Empty())
	require.False(t, st.Full())
}

func TestOverflow(t *testing.T) {
	st, err := stack.New[int32](2)
	require.NoError(t, err)
	require.NoError(t, st.Push(1))
	require.NoError(t, st.Push(2))

	err = st.Push(3)
	require.ErrorIs(t, err, stack.ErrStackOverflow)

	// The failed push must not have touched anything.
	require.Equal(t, 2, st.Len())
	require.Equal(t, []int32{1, 2}, st.Data())
}

func TestUnderflow(t *testing.T) {
	st, err := stack.New[int32](2)
	require.NoError(t, err)

	_, err = st.Pop()
	require.ErrorIs(t, err, stack.ErrStackUnderflow)
	require.Zero(t, st.Len())

	_, err = st.Peek()
	require.ErrorIs(t, err, stack.ErrStackUnderflow)

	// A failed pop must not desynchronize later operations.
	require.NoError(t, st.Push(7))
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}

func TestPeek(t *testing.T) {
	st, err := stack.New[int32](4)
	require.NoError(t, err)
	require.NoError(t, st.Push(10))
	require.NoError(t, st.Push(20))

	for i := 0; i < 3; i++ {
		v, err := st.Peek()
		require.NoError(t, err)
		require.Equal(t, int32(20), v)
		require.Equal(t, 2, st.Len())
	}
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(20), v)
	v, err = st.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(10), v)
}

func TestBack(t *testing.T) {
	st, err := stack.New[int32](4)
	require.NoError(t, err)
	for _, v := range []int32{10, 20, 30} {
		require.NoError(t, st.Push(v))
	}
	for n, want := range map[int]int32{0: 30, 1: 20, 2: 10} {
		v, err := st.Back(n)
		require.NoError(t, err, "Back(%d)", n)
		assert.Equal(t, want, v, "Back(%d)", n)
	}
	_, err = st.Back(3)
	require.ErrorIs(t, err, stack.ErrStackUnderflow)
	_, err = st.Back(-1)
	require.ErrorIs(t, err, stack.ErrStackUnderflow)
	require.Equal(t, 3, st.Len())
}

func TestCapacityOne(t *testing.T) {
	st, err := stack.New[int32](1)
	require.NoError(t, err)
	require.NoError(t, st.Push(99))
	require.True(t, st.Full())
	require.ErrorIs(t, st.Push(100), stack.ErrStackOverflow)
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(99), v)
	require.True(t, st.Empty())
}

// The worked example from the package's documentation: capacity 3, three
// pushes to full, overflow, three pops in reverse order, underflow.
func TestFillDrainScenario(t *testing.T) {
	st, err := stack.New[int32](3)
	require.NoError(t, err)

	require.NoError(t, st.Push(10))
	require.NoError(t, st.Push(20))
	require.NoError(t, st.Push(30))
	require.True(t, st.Full())

	require.ErrorIs(t, st.Push(40), stack.ErrStackOverflow)

	for _, want := range []int32{30, 20, 10} {
		v, err := st.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, err = st.Pop()
	require.ErrorIs(t, err, stack.ErrStackUnderflow)
}

func TestReset(t *testing.T) {
	st, err := stack.New[int32](4)
	require.NoError(t, err)
	require.NoError(t, st.Push(1))
	require.NoError(t, st.Push(2))

	st.Reset()
	require.True(t, st.Empty())
	require.Equal(t, 4, st.Cap())

	// Full capacity is available again after a reset.
	for i := int32(0); i < 4; i++ {
		require.NoError(t, st.Push(i))
	}
	require.True(t, st.Full())
}

func TestDataAliasing(t *testing.T) {
	st, err := stack.New[int32](4)
	require.NoError(t, err)
	require.NoError(t, st.Push(1))
	require.NoError(t, st.Push(2))

	data := st.Data()
	require.Equal(t, []int32{1, 2}, data)

	// Data views live storage, it does not copy it.
	data[1] = 42
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
}

func TestString(t *testing.T) {
	st, err := stack.New[int32](3)
	require.NoError(t, err)
	require.Equal(t, "stack [] (0/3)", st.String())
	require.NoError(t, st.Push(1))
	require.NoError(t, st.Push(2))
	require.Equal(t, "stack [1 2] (2/3)", st.String())
}

// The unchecked operations must agree with the checked ones whenever the
// preconditions hold.
func TestUncheckedRoundTrip(t *testing.T) {
	const capacity = 256
	rng := rand.New(rand.NewSource(7))

	checked, err := stack.New[int32](capacity)
	require.NoError(t, err)
	unchecked, err := stack.New[int32](capacity)
	require.NoError(t, err)

	values := make([]int32, capacity)
	for i := range values {
		values[i] = rng.Int31()
	}
	for _, v := range values {
		require.NoError(t, checked.Push(v))
		unchecked.PushUnchecked(v)
	}
	require.Equal(t, checked.Len(), unchecked.Len())

	top, err := checked.Peek()
	require.NoError(t, err)
	require.Equal(t, top, unchecked.PeekUnchecked())

	for !checked.Empty() {
		want, err := checked.Pop()
		require.NoError(t, err)
		require.Equal(t, want, unchecked.PopUnchecked())
	}
	require.True(t, unchecked.Empty())
}

func TestInt64Elements(t *testing.T) {
	st, err := stack.New[int64](2)
	require.NoError(t, err)
	require.NoError(t, st.Push(1<<40))
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(1<<40), v)
}
