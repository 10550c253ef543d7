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

// Package transpose implements in-place transposition of square matrices
// held in flat row-major buffers.
//
// All four kernels compute the same permutation, element (i,j) trading
// places with element (j,i), and differ only in traversal order. That
// difference is the point: the package exists to compare how row-major,
// blocked, two-level blocked, and recursive access patterns behave as the
// matrix grows past each cache level.
//
// # Memory Layout
//
// A matrix is a flat []T of at least n*stride elements with element (i,j)
// at m[i*stride+j] and stride >= n. The stride is explicit so callers can
// widen it: rows that start exactly a power-of-two apart keep landing in
// the same cache sets, and a column walk then evicts its own working set
// line by line. Pad computes a stride congruent to an odd residue mod 64
// that breaks this alignment.
//
// # Kernels
//
//	Row(m, n, stride)                   triangular swap, row-major order
//	Block(m, n, stride, block)          single-level block×block tiling
//	Block2(m, n, stride, inner, outer)  tiles within bands, two cache levels
//	Rec(m, n)                           cache-oblivious halving, stride n
//
// Row walks the strict upper triangle directly; every swap's mirror access
// strides a full row, so past L1 the column side misses on nearly every
// line. Block limits the working set to a pair of tiles. Block2 adds an
// outer band sized for a larger cache level around the inner tiles. Rec
// needs no tuning at all: halving the extent recursively fits whatever
// level the working set currently overflows.
//
// # Stride Padding
//
// Pad(n) returns the default padded stride, PadTo(n, residue) a custom
// one. Padding applies to Row, Block and Block2; Rec measures the
// unpadded layout and always runs at stride n.
//
// # Usage
//
//	n := 4096
//	stride := transpose.Pad(n)
//	m := make([]int32, n*stride)
//	// ... fill m ...
//	transpose.Block(m, n, stride, transpose.DefaultBlockSize)
//
// Applying a kernel twice restores the original contents exactly.
//
// # Preconditions
//
// Kernels mutate in place and return nothing. Structural misuse (a
// negative n, a stride below n, a buffer shorter than n*stride, or
// invalid tuning sizes) panics. n == 0 is a no-op.
package transpose
