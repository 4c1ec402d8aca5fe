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
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every [*RangeError] under [errors.Is].
var ErrOutOfRange = errors.New("enumx: value out of range")

// RangeError is returned when a value is not one of the members of its enum.
type RangeError struct {
	Type  string // The enum's type, as printed by %T.
	Value int64  // The offending value. Unsigned values above MaxInt64 wrap.
	Count int    // The number of members of the enum.
}

func newRangeError[E Enum](v E) *RangeError {
	return &RangeError{
		Type:  fmt.Sprintf("%T", v),
		Value: int64(v),
		Count: Count[E](),
	}
}

// Error implements [error].
func (e *RangeError) Error() string {
	return fmt.Sprintf("enumx: %s(%d) out of range [0, %d)", e.Type, e.Value, e.Count)
}

// Is makes [ErrOutOfRange] match any [*RangeError].
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
