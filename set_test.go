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

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/enumx"
	"github.com/bufbuild/enumx/internal/enumtest"
)

func TestSet(t *testing.T) {
	t.Parallel()

	var zero enumx.Set[enumtest.Level]
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.Has(enumtest.Debug))
	assert.Empty(t, slices.Collect(zero.All()))

	set := enumx.NewSet(enumtest.Error, enumtest.Debug)
	assert.True(t, set.Has(enumtest.Debug))
	assert.True(t, set.Has(enumtest.Error))
	assert.False(t, set.Has(enumtest.Info))
	assert.False(t, set.Has(enumtest.Level(-1)))
	assert.False(t, set.Has(enumtest.Level(4)))

	more := set.With(enumtest.Info)
	assert.False(t, set.Has(enumtest.Info), "With modified its receiver")
	assert.True(t, more.Has(enumtest.Info))
	assert.Equal(t, 3, more.Len())
	assert.Equal(t,
		[]enumtest.Level{enumtest.Debug, enumtest.Info, enumtest.Error},
		slices.Collect(more.All()),
	)

	less := more.Without(enumtest.Debug)
	assert.True(t, more.Has(enumtest.Debug), "Without modified its receiver")
	assert.Equal(t, []enumtest.Level{enumtest.Info, enumtest.Error}, slices.Collect(less.All()))
}

func TestSetPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { enumx.NewSet(letter(3)) })
	assert.Panics(t, func() { enumx.NewSet[enumtest.Level]().With(-1) })
	assert.Panics(t, func() { enumx.NewSet[enumtest.Level]().Without(4) })
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	evens := enumx.NewSet[wide]()
	for v := range enumx.All[wide]() {
		if v%2 == 0 {
			evens = evens.With(v)
		}
	}
	assert.Equal(t, 65, evens.Len())
	assert.True(t, evens.Has(128))
	assert.False(t, evens.Has(129))

	odds := evens.Complement()
	assert.Equal(t, 65, odds.Len())
	assert.True(t, odds.Has(129))
	assert.False(t, odds.Has(130))

	full := enumx.Full[wide]()
	assert.Equal(t, 130, full.Len())
	assert.True(t, evens.Union(odds).Equal(full))
	assert.Equal(t, 0, evens.Intersect(odds).Len())
	assert.True(t, evens.Intersect(full).Equal(evens))
	assert.True(t, full.Complement().Equal(enumx.Set[wide]{}))

	// Sets that differ only in allocated words are still equal.
	assert.True(t, enumx.NewSet[wide]().Equal(enumx.Set[wide]{}))
	assert.True(t, enumx.NewSet[wide](129).Without(129).Equal(enumx.Set[wide]{}))

	assert.Equal(t, []enumtest.Single{enumtest.Only}, slices.Collect(enumx.Full[enumtest.Single]().All()))
	assert.Equal(t, 0, enumx.Full[empty]().Len())
	assert.Equal(t, 255, enumx.Full[tight]().Len())
}
