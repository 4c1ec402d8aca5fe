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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/enumx"
	"github.com/bufbuild/enumx/internal/enumtest"
)

func TestAll(t *testing.T) {
	t.Parallel()

	levels := []enumtest.Level{enumtest.Debug, enumtest.Info, enumtest.Warn, enumtest.Error}
	if diff := cmp.Diff(levels, slices.Collect(enumx.All[enumtest.Level]())); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(levels, enumx.Values[enumtest.Level]()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	slices.Reverse(levels)
	if diff := cmp.Diff(levels, slices.Collect(enumx.Backward[enumtest.Level]())); diff != "" {
		t.Errorf("Backward mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t,
		[]enumtest.Color{enumtest.Red, enumtest.Green, enumtest.Blue},
		slices.Collect(enumtest.AllColors()),
	)

	assert.Len(t, enumx.Values[tight](), 255)
	assert.Equal(t, tight(254), slices.Collect(enumx.All[tight]())[254])
	assert.Equal(t, tight(254), slices.Collect(enumx.Backward[tight]())[0])

	assert.Empty(t, enumx.Values[empty]())
	assert.Empty(t, slices.Collect(enumx.Backward[empty]()))
}

func TestAllBreak(t *testing.T) {
	t.Parallel()

	var got []wide
	for v := range enumx.All[wide]() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []wide{0, 1, 2}, got)

	got = nil
	for v := range enumx.Backward[wide]() {
		if v == 127 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []wide{129, 128}, got)
}

func TestRange(t *testing.T) {
	t.Parallel()

	var r enumx.Range[letter]
	assert.Equal(t, enumx.At(A), r.Begin())
	assert.Equal(t, enumx.At(letter(3)), r.End())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(C))
	assert.False(t, r.Contains(letter(3)))
	assert.Equal(t, []letter{A, B, C}, slices.Collect(r.All()))
	assert.Equal(t, []letter{C, B, A}, slices.Collect(r.Backward()))

	// Len agrees with the number of steps actually taken.
	var steps int
	for it := r.Begin(); it != r.End(); it = it.Next() {
		steps++
	}
	assert.Equal(t, r.Len(), steps)

	assert.Equal(t, 0, enumx.Range[empty]{}.Len())
	assert.Equal(t, enumx.Range[empty]{}.Begin(), enumx.Range[empty]{}.End())
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	want := enumx.Values[wide]()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, slices.Collect(enumx.All[wide]()))
		}()
	}
	wg.Wait()
}
