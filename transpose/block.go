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

// Block size tuned for L1 cache (32KB typical).
// A tile and its transposed mirror of 64x64 int32 = 2 * 64 * 64 * 4 = 32KB.
const DefaultBlockSize = 64

// Block transposes the n×n matrix m in place using blockSize×blockSize
// tiles. Tiles on the diagonal get the triangular in-tile swap; each tile
// right of the diagonal is transposed and exchanged with its mirror below
// the diagonal in one pass, so every tile pair is visited exactly once.
// Partial tiles at the edges are clipped to n.
//
// The buffer must hold at least n*stride elements.
func Block[T Element](m []T, n, stride, blockSize int) {
	checkMatrix(m, n, stride)
	if blockSize < 1 {
		panic("transpose: block size below 1")
	}
	for k := 0; k < n; k += blockSize {
		kEnd := min(k+blockSize, n)

		// Diagonal tile: strict upper triangle within the tile.
		for i := k; i < kEnd; i++ {
			for j := i + 1; j < kEnd; j++ {
				m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
			}
		}

		// Tiles right of the diagonal, swapped with their mirrors.
		for l := k + blockSize; l < n; l += blockSize {
			lEnd := min(l+blockSize, n)
			for i := k; i < kEnd; i++ {
				for j := l; j < lEnd; j++ {
					m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
				}
			}
		}
	}
}
