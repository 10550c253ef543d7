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

package bench

// A Sweep generates the matrix sizes a run visits. Generators with
// invalid parameters yield an empty sweep rather than panicking: a sweep
// is configuration, not a kernel precondition.
type Sweep interface {
	Values() []int
}

// Geometric grows the size by the ratio Num/Den in integer arithmetic
// (n ← n*Num/Den), bumping by one where the ratio rounds away. The
// default measurement sweep is Geometric{1000, 26000, 12, 11}, dense
// enough to trace each cache-capacity cliff without hammering one
// alignment class.
type Geometric struct {
	Start, Max int
	Num, Den   int
}

func (g Geometric) Values() []int {
	if g.Start < 1 || g.Max < g.Start || g.Den < 1 || g.Num <= g.Den {
		return nil
	}
	var sizes []int
	for n := g.Start; n <= g.Max; {
		sizes = append(sizes, n)
		next := n * g.Num / g.Den
		if next <= n {
			next = n + 1
		}
		n = next
	}
	return sizes
}

// Linear visits Start, Start+Step, ... up to Max. Linear{64, 4096, 64}
// sweeps every multiple of 64, the dense alternative for studying
// alignment effects directly.
type Linear struct {
	Start, Max, Step int
}

func (l Linear) Values() []int {
	if l.Start < 1 || l.Max < l.Start || l.Step < 1 {
		return nil
	}
	var sizes []int
	for n := l.Start; n <= l.Max; n += l.Step {
		sizes = append(sizes, n)
	}
	return sizes
}

// Powers multiplies by Factor and finishes on Max itself when the
// progression does not land there, the conventional benchmark range:
// Powers{64, 26000, 4} visits 64, 256, 1024, 4096, 16384, 26000.
type Powers struct {
	Start, Max, Factor int
}

func (p Powers) Values() []int {
	if p.Start < 1 || p.Max < p.Start || p.Factor < 2 {
		return nil
	}
	var sizes []int
	for n := p.Start; n <= p.Max; n *= p.Factor {
		sizes = append(sizes, n)
	}
	if sizes[len(sizes)-1] != p.Max {
		sizes = append(sizes, p.Max)
	}
	return sizes
}
