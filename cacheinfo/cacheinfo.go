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

// Package cacheinfo reports the cache hierarchy the transposition
// benchmarks run against, so results can be read next to the geometry
// that shaped them.
package cacheinfo

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Typical geometry used when the CPU does not report cache sizes
// (common under emulation and on some ARM SoCs).
const (
	fallbackL1D = 32 << 10
	fallbackL2  = 256 << 10
)

// x/sys sizes CacheLinePad to the target architecture's cache line.
const fallbackLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Hierarchy describes the cache levels relevant to blocked transposition.
// Sizes are in bytes; L3 is 0 when absent or undetected.
type Hierarchy struct {
	Brand string
	Cores int
	Line  int
	L1D   int
	L2    int
	L3    int
}

// Detect queries the CPU for its cache geometry, substituting typical
// values where detection reports nothing.
func Detect() Hierarchy {
	h := Hierarchy{
		Brand: cpuid.CPU.BrandName,
		Cores: runtime.NumCPU(),
		Line:  cpuid.CPU.CacheLine,
		L1D:   cpuid.CPU.Cache.L1D,
		L2:    cpuid.CPU.Cache.L2,
		L3:    cpuid.CPU.Cache.L3,
	}
	if h.Brand == "" {
		h.Brand = runtime.GOARCH
	}
	if h.Line <= 0 {
		h.Line = fallbackLine
	}
	if h.L1D <= 0 {
		h.L1D = fallbackL1D
	}
	if h.L2 <= 0 {
		h.L2 = fallbackL2
	}
	if h.L3 < 0 {
		h.L3 = 0
	}
	return h
}

func (h Hierarchy) String() string {
	l3 := "none"
	if h.L3 > 0 {
		l3 = sizeString(h.L3)
	}
	return fmt.Sprintf("%s: %d cores, %dB lines, L1d %s, L2 %s, L3 %s",
		h.Brand, h.Cores, h.Line, sizeString(h.L1D), sizeString(h.L2), l3)
}

// SuggestBlockSize returns the largest power-of-two tile edge whose
// working set, a tile plus its transposed mirror, fits the L1 data
// cache. For a 32KB L1d and 4-byte elements that is 64.
func (h Hierarchy) SuggestBlockSize(elemSize int) int {
	if elemSize < 1 {
		panic("cacheinfo: element size below 1")
	}
	b := 8
	for b*2 <= 256 && 2*(b*2)*(b*2)*elemSize <= h.L1D {
		b *= 2
	}
	return b
}

func sizeString(b int) string {
	switch {
	case b >= 1<<20 && b%(1<<20) == 0:
		return fmt.Sprintf("%dM", b>>20)
	case b >= 1<<10 && b%(1<<10) == 0:
		return fmt.Sprintf("%dK", b>>10)
	}
	return fmt.Sprintf("%dB", b)
}
