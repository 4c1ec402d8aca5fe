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

// Package enumx provides reflective helpers for Go enums: counting their
// members, validating values, and iterating over all of them.
//
// Go enums are just named integer types with a block of constants, so there
// is no way to ask a type how many constants it has. This package works with
// any integer type whose constants are the contiguous values 0 through N-1,
// and which reports N through an EnumCount method. See [Enum].
//
// The EnumCount method can be written by hand:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//		numColors = iota
//	)
//
//	func (Color) EnumCount() int { return numColors }
//
// or generated, together with the type and its constants, by
// github.com/bufbuild/enumx/cmd/enumgen.
//
// # Checked and Unchecked Access
//
// [Iterator.Value] and [Check] report out-of-range values as errors. Their
// unchecked counterpart, [Iterator.Get], performs no check at all unless the
// program is built with the enumx_debug build tag, in which case it panics on
// out-of-range values. Loops driven by [Begin] and [End], or by [All], never
// produce out-of-range values and can use Get freely.
package enumx
