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

// Row transposes the n×n matrix m in place, walking the strict upper
// triangle in row-major order. The row side of each swap is sequential;
// the mirror access m[j*stride+i] jumps a whole stride per step, so once
// a column walk spans more lines than the cache holds, every swap misses.
//
// The buffer must hold at least n*stride elements.
func Row[T Element](m []T, n, stride int) {
	checkMatrix(m, n, stride)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m[i*stride+j], m[j*stride+i] = m[j*stride+i], m[i*stride+j]
		}
	}
}
