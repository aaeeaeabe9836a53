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

import (
	"fmt"
	"sync"
)

// Pool recycles stacks of a single capacity, so that callers which need a
// short-lived scratch stack per unit of work pay the backing-array
// allocation only rarely. Get and Put may be called concurrently; the
// stacks handed out are still single-owner while held.
type Pool[T Int] struct {
	capacity int
	pool     sync.Pool
}

// NewPool creates a pool of stacks with the given capacity. Returns
// ErrInvalidCapacity if capacity is zero or negative.
func NewPool[T Int](capacity int) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	p := &Pool[T]{capacity: capacity}
	p.pool.New = func() any {
		st, _ := New[T](capacity)
		return st
	}
	return p, nil
}

// Get returns an empty stack of the pool's capacity, either recycled or
// freshly allocated.
func (p *Pool[T]) Get() *Stack[T] {
	return p.pool.Get().(*Stack[T])
}

// Put resets st and returns it to the pool. Stacks of a different capacity
// are discarded rather than mixed in.
func (p *Pool[T]) Put(st *Stack[T]) {
	if st == nil || st.Cap() != p.capacity {
		return
	}
	st.Reset()
	p.pool.Put(st)
}

// Cap returns the capacity of the stacks managed by the pool.
func (p *Pool[T]) Cap() int {
	return p.capacity
}
