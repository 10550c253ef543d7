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

// Two-level tile sizes.
// Inner: a 4x4 int32 tile is 4 * 4 * 4 = 64 bytes, one cache line.
// Outer: a crossing pair of 4x1040 int32 strips is 2 * 4 * 1040 * 4 ≈ 33KB,
// so band passes turn over in L2 while the one-line tiles stay hot in L1.
const (
	DefaultInnerBlock = 4
	DefaultOuterBlock = 1040
)

// Block2 transposes the n×n matrix m in place using inner×inner tiles
// grouped into outer×outer bands. Within a diagonal band the inner tiles
// follow the same diagonal/off-diagonal split as Block. Between two
// distinct bands x < y every inner tile pair is off-diagonal and is
// cross-swapped directly. Partial tiles and bands are clipped to n.
//
// outer must be a positive multiple of inner: a non-dividing inner tile
// would straddle a band boundary and swap the straddled pairs twice.
// The buffer must hold at least n*stride elements.
func Block2[T Element](m []T, n, stride, inner, outer int) {
	checkMatrix(m, n, stride)
	if inner < 1 {
		panic("transpose: inner block size below 1")
	}
	if outer < inner || outer%inner != 0 {
		panic("transpose: outer block size not a multiple of inner")
	}
	for x := 0; x < n; x += outer {
		xEnd := min(x+outer, n)

		// Inner tiles within the diagonal band [x, xEnd).
		for k := x; k < xEnd; k += inner {
			kEnd := min(k+inner, n)
			for i := k; i < kEnd; i++ {
				for j := i + 1; j < kEnd; j++ {
					m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
				}
			}
			for l := k + inner; l < xEnd; l += inner {
				lEnd := min(l+inner, n)
				for i := k; i < kEnd; i++ {
					for j := l; j < lEnd; j++ {
						m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
					}
				}
			}
		}

		// Band x against every later band y: all tile pairs off-diagonal.
		for y := x + outer; y < n; y += outer {
			yEnd := min(y+outer, n)
			for k := x; k < xEnd; k += inner {
				kEnd := min(k+inner, n)
				for l := y; l < yEnd; l += inner {
					lEnd := min(l+inner, n)
					for i := k; i < kEnd; i++ {
						for j := l; j < lEnd; j++ {
							m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
						}
					}
				}
			}
		}
	}
}
