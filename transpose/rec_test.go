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

import "testing"

// Extents at or below recBase are handled by a single base-case pass.
func TestRecBaseSizes(t *testing.T) {
	for n := 0; n <= recBase; n++ {
		m := newMatrix(n, n)
		want := reference(m, n, n)
		Rec(m, n)
		checkCells(t, m, want, n, n)
	}
}

// Odd extents force the unequal h / ext-h split at every level; each
// element pair must still be swapped exactly once.
func TestRecOddSizes(t *testing.T) {
	for _, n := range []int{5, 7, 9, 13, 31, 33, 101} {
		m := newMatrix(n, n)
		want := reference(m, n, n)
		Rec(m, n)
		checkCells(t, m, want, n, n)

		Rec(m, n)
		orig := newMatrix(n, n)
		checkCells(t, m, orig, n, n)
	}
}

// Sizes whose off-diagonal halves recurse again (beyond one split) cover
// the rectangular cross-swap at depth.
func TestRecDeepSizes(t *testing.T) {
	for _, n := range []int{16, 24, 37, 64, 96, 129} {
		m := newMatrix(n, n)
		want := reference(m, n, n)
		Rec(m, n)
		checkCells(t, m, want, n, n)
	}
}

// recSwap on hand-picked disjoint rectangles, against a direct loop.
func TestRecSwapRectangles(t *testing.T) {
	rects := []struct {
		name           string
		nr, nc         int
		i0, j0, i1, j1 int
	}{
		{"wide", 3, 5, 1, 9, 9, 1},
		{"tall", 5, 3, 9, 1, 1, 9},
		{"row", 1, 7, 0, 8, 8, 0},
		{"column", 7, 1, 8, 0, 0, 8},
		{"square", 6, 6, 10, 2, 2, 10},
	}
	const n = 16
	for _, r := range rects {
		t.Run(r.name, func(t *testing.T) {
			m := newMatrix(n, n)
			orig := newMatrix(n, n)

			recSwap(m, n, r.nr, r.nc, r.i0, r.j0, r.i1, r.j1)

			want := newMatrix(n, n)
			for di := 0; di < r.nr; di++ {
				for dj := 0; dj < r.nc; dj++ {
					want[(r.i0+di)*n+r.j0+dj] = orig[(r.i1+dj)*n+r.j1+di]
					want[(r.i1+dj)*n+r.j1+di] = orig[(r.i0+di)*n+r.j0+dj]
				}
			}
			for idx := range m {
				if m[idx] != want[idx] {
					t.Fatalf("buffer[%d] = %d, want %d", idx, m[idx], want[idx])
				}
			}
		})
	}
}
