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

package stack

// The unchecked fast path. These methods omit the precondition branch of
// their checked counterparts; the caller owns the precondition instead.
// Violations are not a reported error condition: a PushUnchecked on a full
// stack panics on the out-of-range write, and a PopUnchecked on an empty
// stack drives top negative and desynchronizes every operation after it.
// Callers typically establish the precondition once per loop (a single
// Len()/Cap() comparison before a burst of operations), which is where the
// saving over per-call checks comes from.

// PushUnchecked places v on top of the stack.
//
// Precondition: the stack is not full, i.e. Len() < Cap().
func (st *Stack[T]) PushUnchecked(v T) {
	st.data[st.top] = v
	st.top++
}

// PopUnchecked removes and returns the most recently pushed element.
//
// Precondition: the stack is not empty, i.e. Len() > 0.
func (st *Stack[T]) PopUnchecked() T {
	st.top--
	return st.data[st.top]
}

// PeekUnchecked returns the top element without removing it.
//
// Precondition: the stack is not empty, i.e. Len() > 0.
func (st *Stack[T]) PeekUnchecked() T {
	return st.data[st.top-1]
}
