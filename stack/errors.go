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

import "errors"

// The errors returned by the checked API. Returned values wrap these and
// carry the offending counts, so match with errors.Is.
var (
	ErrInvalidCapacity = errors.New("invalid stack capacity")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
)
