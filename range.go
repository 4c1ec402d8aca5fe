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

import "iter"

// Begin returns an iterator at the first member of E.
func Begin[E Enum]() Iterator[E] {
	return At(First[E]())
}

// End returns an iterator one past the last member of E.
//
// Stepping forward from [Begin] reaches End after exactly [Count] steps.
func End[E Enum]() Iterator[E] {
	return At(E(Count[E]()))
}

// All returns an iterator over the members of E in ascending order.
func All[E Enum]() iter.Seq[E] {
	return func(yield func(E) bool) {
		n := Count[E]()
		for i := range n {
			if !yield(E(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the members of E in descending order.
func Backward[E Enum]() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := Count[E]() - 1; i >= 0; i-- {
			if !yield(E(i)) {
				return
			}
		}
	}
}

// Values returns a new slice containing every member of E in ascending order.
func Values[E Enum]() []E {
	n := max(Count[E](), 0)
	values := make([]E, 0, n)
	for v := range All[E]() {
		values = append(values, v)
	}
	return values
}

// Range is the range of all members of E.
//
// Range holds no state; each method is computed from E on demand.
type Range[E Enum] struct{}

// Begin is an alias for [Begin].
func (Range[E]) Begin() Iterator[E] { return Begin[E]() }

// End is an alias for [End].
func (Range[E]) End() Iterator[E] { return End[E]() }

// Len returns the number of steps from Begin to End, which is [Count].
func (r Range[E]) Len() int { return r.Begin().Distance(r.End()) }

// Contains is an alias for [Valid].
func (Range[E]) Contains(v E) bool { return Valid(v) }

// All is an alias for [All].
func (Range[E]) All() iter.Seq[E] { return All[E]() }

// Backward is an alias for [Backward].
func (Range[E]) Backward() iter.Seq[E] { return Backward[E]() }
