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

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"
)

// Set is a set of members of E, implicitly ordered by their values.
//
// Sets are values: every operation that changes a set returns a new one, and
// never modifies its receiver or arguments.
//
// A zero Set is empty and ready to use.
type Set[E Enum] struct {
	bits []uint64 // Invariant: no bits at or above Count[E]() are set.
}

// NewSet returns a new [Set] with the given values set.
//
// Panics if any value is not [Valid].
func NewSet[E Enum](values ...E) Set[E] {
	return Set[E]{}.With(values...)
}

// Full returns the [Set] of all members of E.
func Full[E Enum]() Set[E] {
	return Set[E]{}.Complement()
}

// Len returns the number of values in the set.
func (s Set[E]) Len() int {
	var n int
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Has checks whether v is present in this set. Invalid values are never
// present.
func (s Set[E]) Has(v E) bool {
	if !Valid(v) {
		return false
	}
	i := uint64(v)
	if i/64 >= uint64(len(s.bits)) {
		return false
	}
	return s.bits[i/64]&(uint64(1)<<(i%64)) != 0
}

// With returns a new set with the given values inserted.
//
// Panics if any value is not [Valid].
func (s Set[E]) With(values ...E) Set[E] {
	s.bits = s.grown()
	for _, v := range values {
		if !Valid(v) {
			panic(fmt.Sprintf("enumx: inserted invalid value %d into Set[%T]", int64(v), v))
		}
		i := uint64(v)
		s.bits[i/64] |= uint64(1) << (i % 64)
	}
	return s
}

// Without returns a new set with the given values removed.
//
// Panics if any value is not [Valid].
func (s Set[E]) Without(values ...E) Set[E] {
	s.bits = s.grown()
	for _, v := range values {
		if !Valid(v) {
			panic(fmt.Sprintf("enumx: removed invalid value %d from Set[%T]", int64(v), v))
		}
		i := uint64(v)
		s.bits[i/64] &^= uint64(1) << (i % 64)
	}
	return s
}

// Union returns the set of values in either s or t.
func (s Set[E]) Union(t Set[E]) Set[E] {
	out := s.grown()
	for i, w := range t.bits {
		out[i] |= w
	}
	return Set[E]{bits: out}
}

// Intersect returns the set of values in both s and t.
func (s Set[E]) Intersect(t Set[E]) Set[E] {
	out := s.grown()
	for i := range out {
		if i < len(t.bits) {
			out[i] &= t.bits[i]
		} else {
			out[i] = 0
		}
	}
	return Set[E]{bits: out}
}

// Complement returns the set of members of E not in s.
func (s Set[E]) Complement() Set[E] {
	out := s.grown()
	for i := range out {
		out[i] = ^out[i]
	}
	if n := max(Count[E](), 0); n%64 != 0 {
		out[len(out)-1] &= uint64(1)<<(n%64) - 1
	}
	return Set[E]{bits: out}
}

// Equal returns whether s and t contain the same values.
func (s Set[E]) Equal(t Set[E]) bool {
	a, b := s.bits, t.bits
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, w := range a {
		var v uint64
		if i < len(b) {
			v = b[i]
		}
		if w != v {
			return false
		}
	}
	return true
}

// All returns an iterator over the elements in the set, in ascending order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i, w := range s.bits {
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(E(i*64 + bit)) {
					return
				}
				w &^= uint64(1) << bit
			}
		}
	}
}

// grown returns a copy of s's words, sized to hold every member of E.
func (s Set[E]) grown() []uint64 {
	words := (max(Count[E](), 0) + 63) / 64
	out := slices.Clone(s.bits)
	if len(out) < words {
		out = append(out, make([]uint64, words-len(out))...)
	}
	return out
}
