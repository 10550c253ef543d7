// Copyright 2026 bench-transpose Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transpose

import (
	"fmt"
	"testing"
)

// Tile sizes that do not divide n exercise the edge clipping; a tile
// larger than n degenerates to the row kernel.
func TestBlockSizes(t *testing.T) {
	for _, blockSize := range []int{1, 3, 5, 64, 200} {
		t.Run(fmt.Sprintf("block=%d", blockSize), func(t *testing.T) {
			for _, n := range []int{0, 1, 10, 64, 100, 130} {
				stride := Pad(n)
				m := newMatrix(n, stride)
				want := reference(m, n, stride)
				Block(m, n, stride, blockSize)
				checkCells(t, m, want, n, stride)
			}
		})
	}
}

func TestBlock2Sizes(t *testing.T) {
	pairs := []struct {
		inner, outer int
	}{
		{1, 1},
		{1, 5},
		{2, 6},
		{3, 9},
		{4, 8},
		{4, 80},
		{4, 1040},
	}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("inner=%d,outer=%d", p.inner, p.outer), func(t *testing.T) {
			for _, n := range []int{0, 1, 10, 33, 100, 130} {
				stride := Pad(n)
				m := newMatrix(n, stride)
				want := reference(m, n, stride)
				Block2(m, n, stride, p.inner, p.outer)
				checkCells(t, m, want, n, stride)
			}
		})
	}
}

// A diagonal tile must swap each interior pair exactly once. Doubled
// swaps leave the tile untransposed yet go unnoticed on symmetric
// content; position-coded cells catch them.
func TestBlockDiagonalTileOnce(t *testing.T) {
	const n, blockSize = 6, 3
	m := newMatrix(n, n)
	want := reference(m, n, n)
	Block(m, n, n, blockSize)
	checkCells(t, m, want, n, n)
}
