// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enumx

import "golang.org/x/exp/constraints"

// Enum is a type constraint for extended enums.
//
// An extended enum is an integer type whose members are exactly the values
// 0 through N-1, where N is the value returned by EnumCount. EnumCount is
// always called on the zero value, and must return the same constant for
// every receiver.
//
// The underlying type must be able to represent N itself, since that is the
// position of [End].
type Enum interface {
	constraints.Integer

	// EnumCount returns the number of members of this enum.
	EnumCount() int
}

// Count returns the number of members of E.
func Count[E Enum]() int {
	var zero E
	return zero.EnumCount()
}

// Valid returns whether v is one of the members of E.
//
// Negative values are never valid, regardless of E's count.
func Valid[E Enum](v E) bool {
	if v < 0 {
		return false
	}
	n := Count[E]()
	if n <= 0 {
		return false
	}
	return uint64(v) < uint64(n)
}

// Check is like [Valid], but returns a [*RangeError] describing v if it is
// out of range, and nil otherwise.
func Check[E Enum](v E) error {
	if Valid(v) {
		return nil
	}
	return newRangeError(v)
}

// First returns the first member of E, i.e., zero.
func First[E Enum]() E {
	return 0
}

// Last returns the last member of E.
//
// If E has no members, the result is not [Valid].
func Last[E Enum]() E {
	return E(Count[E]() - 1)
}
