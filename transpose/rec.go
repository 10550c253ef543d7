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

// Recursion stops at 4: a 4x4 int32 tile is 64 bytes, one cache line, the
// smallest extent where the swap loop still moves a full line of useful
// data per call.
const recBase = 4

// Rec transposes the n×n matrix m in place by cache-oblivious recursion:
// the extent halves at every level, so the working set fits each cache
// level in turn without any size-specific tuning constant. Rec measures
// the unpadded layout: element (i,j) lives at m[i*n+j].
//
// The buffer must hold at least n*n elements.
func Rec[T Element](m []T, n int) {
	checkMatrix(m, n, n)
	recDiag(m, n, n, 0)
}

// recDiag transposes the ext×ext block whose top-left corner sits at
// (r0,r0) on the main diagonal. The two diagonal halves recurse on
// themselves; the lower-left half trades places with the upper-right.
func recDiag[T Element](m []T, n, ext, r0 int) {
	if ext <= recBase {
		end := min(r0+ext, n)
		for i := r0; i < end; i++ {
			for j := i + 1; j < end; j++ {
				m[i*n+j], m[j*n+i] = m[j*n+i], m[i*n+j]
			}
		}
		return
	}
	h := ext / 2
	recDiag(m, n, h, r0)
	recDiag(m, n, ext-h, r0+h)
	recSwap(m, n, ext-h, h, r0+h, r0, r0, r0+h)
}

// recSwap exchanges the nr×nc block at (i0,j0) with the transposed nc×nr
// block at (i1,j1): offset (di,dj) of the first block trades places with
// offset (dj,di) of the second. The longer dimension splits in half until
// both extents reach the base case, keeping the halves rectangular rather
// than re-squaring so every element pair is visited exactly once for any
// n, odd extents included.
func recSwap[T Element](m []T, n, nr, nc, i0, j0, i1, j1 int) {
	if nr <= recBase && nc <= recBase {
		for di := 0; di < nr && i0+di < n && j1+di < n; di++ {
			for dj := 0; dj < nc && j0+dj < n && i1+dj < n; dj++ {
				a := (i0+di)*n + j0 + dj
				b := (i1+dj)*n + j1 + di
				m[a], m[b] = m[b], m[a]
			}
		}
		return
	}
	if nr >= nc {
		h := nr / 2
		recSwap(m, n, h, nc, i0, j0, i1, j1)
		recSwap(m, n, nr-h, nc, i0+h, j0, i1, j1+h)
	} else {
		h := nc / 2
		recSwap(m, n, nr, h, i0, j0, i1, j1)
		recSwap(m, n, nr, nc-h, i0, j0+h, i1+h, j1)
	}
}
