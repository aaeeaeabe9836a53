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

// Package stack implements a fixed-capacity LIFO stack of fixed-width
// integers, intended as a building block for hot loops: expression
// evaluators, iterative DFS, parser work-lists and the like.
//
// The backing array is allocated once at construction and never grows, so
// after New returns, no operation allocates.
//
// Every operation comes in two flavours. The checked methods (Push, Pop,
// Peek, Back) validate their preconditions and return an error instead of
// misbehaving. The unchecked methods (PushUnchecked, PopUnchecked,
// PeekUnchecked) omit the branch entirely and make the caller responsible
// for the precondition; see their individual comments for exactly what is
// promised. Whether that branch is worth removing is measurable with the
// benchmarks in this package and with cmd/stackbench.
//
// A Stack is not safe for concurrent use. It is a single-owner primitive
// with no internal locking; callers that share one across goroutines must
// bring their own synchronization.
package stack

import (
	"fmt"
	"strings"
)

// Int is the set of element types a Stack can hold: the fixed-width signed
// integer kinds. Machine-width int is excluded on purpose, so that slot size
// and access cost do not vary between platforms. int32 is the usual choice.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Stack is a fixed-capacity last-in-first-out stack. The zero value is not
// usable; obtain instances from New or from a Pool.
type Stack[T Int] struct {
	data []T
	top  int
}

// New allocates a stack holding at most capacity elements. The backing
// array is allocated here, exactly once; no later operation allocates.
// Returns ErrInvalidCapacity if capacity is zero or negative.
func New[T Int](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Stack[T]{data: make([]T, capacity)}, nil
}

// Push places v on top of the stack. Returns ErrStackOverflow, and writes
// nothing, if the stack is already full.
func (st *Stack[T]) Push(v T) error {
	if st.top == len(st.data) {
		return fmt.Errorf("%w: len %d, limit %d", ErrStackOverflow, st.top, len(st.data))
	}
	st.data[st.top] = v
	st.top++
	return nil
}

// Pop removes and returns the most recently pushed element. Returns
// ErrStackUnderflow, and mutates nothing, if the stack is empty.
func (st *Stack[T]) Pop() (T, error) {
	if st.top == 0 {
		var zero T
		return zero, fmt.Errorf("%w: len 0, need 1", ErrStackUnderflow)
	}
	st.top--
	return st.data[st.top], nil
}

// Peek returns the top element without removing it. Returns
// ErrStackUnderflow if the stack is empty.
func (st *Stack[T]) Peek() (T, error) {
	if st.top == 0 {
		var zero T
		return zero, fmt.Errorf("%w: len 0, need 1", ErrStackUnderflow)
	}
	return st.data[st.top-1], nil
}

// Back returns the n'th element from the top without removing it, so
// Back(0) is the top element. Returns ErrStackUnderflow if the stack holds
// fewer than n+1 elements.
func (st *Stack[T]) Back(n int) (T, error) {
	if n < 0 || st.top <= n {
		var zero T
		return zero, fmt.Errorf("%w: len %d, need %d", ErrStackUnderflow, st.top, n+1)
	}
	return st.data[st.top-n-1], nil
}

// Len returns the number of elements currently on the stack.
func (st *Stack[T]) Len() int {
	return st.top
}

// Cap returns the capacity chosen at construction.
func (st *Stack[T]) Cap() int {
	return len(st.data)
}

// Empty reports whether the stack holds no elements.
func (st *Stack[T]) Empty() bool {
	return st.top == 0
}

// Full reports whether the stack holds Cap() elements.
func (st *Stack[T]) Full() bool {
	return st.top == len(st.data)
}

// Reset drops all elements. The backing array is retained, so the stack is
// immediately reusable at full capacity.
func (st *Stack[T]) Reset() {
	st.top = 0
}

// Data returns the live elements, bottom first, as a sub-slice of the
// backing array. The slice aliases internal storage: it is invalidated by
// any subsequent push, and writing through it writes into the stack.
func (st *Stack[T]) Data() []T {
	return st.data[:st.top]
}

// String renders the stack contents for debugging, bottom first.
func (st *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("stack [")
	for i := 0; i < st.top; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", st.data[i])
	}
	fmt.Fprintf(&b, "] (%d/%d)", st.top, len(st.data))
	return b.String()
}
