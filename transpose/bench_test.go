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
	"os"
	"strconv"
	"testing"
)

// Benchmark sizes. The short table keeps go test fast; set
// BENCH_TRANSPOSE_LONG=1 to extend past L3 into the full measurement
// range (the 16K+ sizes allocate gigabyte-scale buffers).
var benchSizes = []int{256, 512, 1024, 2048, 4096}

func init() {
	if long, _ := strconv.ParseBool(os.Getenv("BENCH_TRANSPOSE_LONG")); long {
		benchSizes = append(benchSizes, 8192, 16384, 26000)
	}
}

func benchKernel(b *testing.B, padded bool, fn func(m []int32, n, stride int)) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			stride := n
			if padded {
				stride = Pad(n)
			}
			m := make([]int32, n*stride)
			for i := range m {
				m[i] = 1
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fn(m, n, stride)
			}
			b.SetBytes(int64(n) * int64(n) * 4)
		})
	}
}

func BenchmarkRow(b *testing.B) {
	benchKernel(b, true, Row[int32])
}

func BenchmarkBlock(b *testing.B) {
	benchKernel(b, true, func(m []int32, n, stride int) {
		Block(m, n, stride, DefaultBlockSize)
	})
}

func BenchmarkBlock2(b *testing.B) {
	benchKernel(b, true, func(m []int32, n, stride int) {
		Block2(m, n, stride, DefaultInnerBlock, DefaultOuterBlock)
	})
}

func BenchmarkRec(b *testing.B) {
	benchKernel(b, false, func(m []int32, n, stride int) {
		Rec(m, n)
	})
}

// Row with the stride left at n: at power-of-two sizes the column walk
// self-evicts, which is what the padding exists to break.
func BenchmarkRowUnpadded(b *testing.B) {
	benchKernel(b, false, Row[int32])
}

// Same traversal, twice the element width, to separate per-element
// overhead from pure byte traffic.
func BenchmarkRowInt64(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			stride := Pad(n)
			m := make([]int64, n*stride)
			for i := range m {
				m[i] = 1
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Row(m, n, stride)
			}
			b.SetBytes(int64(n) * int64(n) * 8)
		})
	}
}

// Outer band width sweep at a fixed size, the knob Block2 is most
// sensitive to.
func BenchmarkBlock2OuterBlock(b *testing.B) {
	const n = 4096
	stride := Pad(n)
	for _, outer := range []int{8, 16, 32, 64, 80, 256, 1040, 4160} {
		b.Run(fmt.Sprintf("outer=%d", outer), func(b *testing.B) {
			m := make([]int32, n*stride)
			for i := range m {
				m[i] = 1
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Block2(m, n, stride, DefaultInnerBlock, outer)
			}
			b.SetBytes(int64(n) * int64(n) * 4)
		})
	}
}

// Single-level tile edge sweep around the L1-derived default.
func BenchmarkBlockSize(b *testing.B) {
	const n = 4096
	stride := Pad(n)
	for _, blockSize := range []int{8, 16, 32, 64, 128, 256} {
		b.Run(fmt.Sprintf("block=%d", blockSize), func(b *testing.B) {
			m := make([]int32, n*stride)
			for i := range m {
				m[i] = 1
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Block(m, n, stride, blockSize)
			}
			b.SetBytes(int64(n) * int64(n) * 4)
		})
	}
}
