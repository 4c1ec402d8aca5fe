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

// Iterator is a position within an enum, in the style of a C++ iterator.
//
// An Iterator is not required to be at a valid member: in particular, [End]
// is one past the last member. Stepping an Iterator is unchecked integer
// arithmetic on the underlying type.
//
// Iterators are comparable, so == and != may be used in place of
// [Iterator.Equal].
//
// A zero Iterator is at [First].
type Iterator[E Enum] struct {
	value E
}

// At returns an iterator positioned at v. No validation is performed.
func At[E Enum](v E) Iterator[E] {
	return Iterator[E]{value: v}
}

// Value returns the member this iterator is positioned at, or a
// [*RangeError] if it is out of range.
func (it Iterator[E]) Value() (E, error) {
	if !Valid(it.value) {
		return it.value, newRangeError(it.value)
	}
	return it.value, nil
}

// Get returns the member this iterator is positioned at, without checking
// that it is valid.
//
// The caller is responsible for ensuring that the iterator is in range; the
// result is meaningless otherwise. When built with the enumx_debug tag, Get
// panics with a [*RangeError] instead.
func (it Iterator[E]) Get() E {
	if debugAssertions && !Valid(it.value) {
		panic(newRangeError(it.value))
	}
	return it.value
}

// Valid returns whether this iterator is positioned at a member of E.
func (it Iterator[E]) Valid() bool {
	return Valid(it.value)
}

// Next returns an iterator one step forward of this one.
func (it Iterator[E]) Next() Iterator[E] {
	it.value++
	return it
}

// Prev returns an iterator one step back from this one.
func (it Iterator[E]) Prev() Iterator[E] {
	it.value--
	return it
}

// Inc steps this iterator forward in place, and returns its old position.
func (it *Iterator[E]) Inc() Iterator[E] {
	old := *it
	it.value++
	return old
}

// Dec steps this iterator back in place, and returns its old position.
func (it *Iterator[E]) Dec() Iterator[E] {
	old := *it
	it.value--
	return old
}

// Equal returns whether two iterators are at the same position.
func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.value == other.value
}

// Distance returns the number of steps from it to other, which is negative if
// other comes before it.
func (it Iterator[E]) Distance(other Iterator[E]) int {
	return int(int64(other.value) - int64(it.value))
}
