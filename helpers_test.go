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

package enumx_test

// letter is a hand-written enum with the usual trailing iota count.
type letter uint8

const (
	A letter = iota
	B
	C
	numLetters = iota
)

func (letter) EnumCount() int { return numLetters }

// wide has more members than fit in one word of a Set.
type wide uint16

func (wide) EnumCount() int { return 130 }

// tight uses every value of its underlying type except the last, which is
// needed for End.
type tight uint8

func (tight) EnumCount() int { return 255 }

// empty has no members at all.
type empty int

func (empty) EnumCount() int { return 0 }
