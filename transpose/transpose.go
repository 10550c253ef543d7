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

// Element constrains the matrix element types the kernels accept.
// Transposition is pure data movement, so any fixed-width numeric type
// works; the kernels stay generic so benchmarks can compare element
// widths. The reference measurements use int32.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// checkMatrix panics unless m can hold an n×n matrix at the given stride.
func checkMatrix[T Element](m []T, n, stride int) {
	if n < 0 {
		panic("transpose: negative matrix size")
	}
	if stride < n {
		panic("transpose: stride below matrix size")
	}
	if len(m) < n*stride {
		panic("transpose: buffer shorter than n*stride")
	}
}
