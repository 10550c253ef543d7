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

// PadResidue is the default stride residue: Pad(n) % 64 == 47.
// 47 is odd, so successive row starts cycle through all 64 offset
// classes mod 64 instead of piling onto one cache set the way they do
// when the stride is a multiple of a high power of two.
const PadResidue = 47

// Pad returns the padded stride for an n×n matrix using PadResidue.
func Pad(n int) int {
	return PadTo(n, PadResidue)
}

// PadTo returns the smallest stride >= n with stride % 64 == residue.
// A residue of 0 disables padding and returns n unchanged. The residue
// must lie in [0, 64).
func PadTo(n, residue int) int {
	if n < 0 {
		panic("transpose: negative matrix size")
	}
	if residue < 0 || residue >= 64 {
		panic("transpose: pad residue out of range")
	}
	if residue == 0 {
		return n
	}
	// The outer mod folds an offset of exactly 64 to 0, so an n already
	// congruent to the residue stays unpadded.
	return n + (64+residue-n%64)%64
}
