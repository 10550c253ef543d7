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

// Package bench drives the transposition kernels across size sweeps: it
// owns buffer allocation, repetition timing and result reporting, so the
// kernels stay pure in-place mutations.
package bench

import (
	"errors"
	"time"

	"github.com/kuk0/bench-transpose/transpose"
)

// ErrNoKernels reports an empty kernel selection.
var ErrNoKernels = errors.New("bench: no kernels selected")

// A Kernel is one transposition strategy under measurement. For padded
// kernels the driver widens the stride by the configured residue;
// unpadded kernels always run at stride == n.
type Kernel struct {
	Name   string
	Padded bool
	Func   func(m []int32, n, stride int)
}

// Kernels returns the four standard kernels in measurement order.
// block is the single-level tile edge, inner/outer the two-level pair;
// values <= 0 select the package defaults.
func Kernels(block, inner, outer int) []Kernel {
	if block <= 0 {
		block = transpose.DefaultBlockSize
	}
	if inner <= 0 {
		inner = transpose.DefaultInnerBlock
	}
	if outer <= 0 {
		outer = transpose.DefaultOuterBlock
	}
	return []Kernel{
		{Name: "row", Padded: true, Func: func(m []int32, n, stride int) {
			transpose.Row(m, n, stride)
		}},
		{Name: "block", Padded: true, Func: func(m []int32, n, stride int) {
			transpose.Block(m, n, stride, block)
		}},
		{Name: "block2", Padded: true, Func: func(m []int32, n, stride int) {
			transpose.Block2(m, n, stride, inner, outer)
		}},
		{Name: "rec", Padded: false, Func: func(m []int32, n, stride int) {
			transpose.Rec(m, n)
		}},
	}
}

// Config controls how each benchmark case is timed.
type Config struct {
	// MinTime is the calibration target: repetitions double until one
	// timed batch lasts at least this long. Zero means one second.
	MinTime time.Duration
	// Reps fixes the repetition count and skips calibration when > 0.
	Reps int
	// Residue is the stride padding residue for padded kernels;
	// 0 disables padding.
	Residue int
	// Fill is the value every buffer cell starts with. Timing measures
	// pure data movement, so the content never matters, only position.
	Fill int32
}

// DefaultConfig mirrors the reference sweep: one-second calibration,
// stride residue 47, all-ones fill.
func DefaultConfig() Config {
	return Config{MinTime: time.Second, Residue: transpose.PadResidue, Fill: 1}
}

// Result is one timed case.
type Result struct {
	Kernel   string        `json:"kernel"`
	N        int           `json:"n"`
	Stride   int           `json:"stride"`
	Reps     int           `json:"reps"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	NsPerOp  float64       `json:"ns_per_op"`
	MBPerSec float64       `json:"mb_per_sec"`
}

// Calibration cap: a zero-size case never reaches MinTime at any
// repetition count.
const maxReps = 1 << 26

// Run times kernel k at size n. The buffer is allocated and filled once,
// outside timing, then reused across repetitions: a transpose is its own
// inverse, so repeated application keeps moving the same bytes and needs
// no restoration between reps.
func (c Config) Run(k Kernel, n int) Result {
	stride := n
	if k.Padded && c.Residue > 0 {
		stride = transpose.PadTo(n, c.Residue)
	}
	m := make([]int32, n*stride)
	for i := range m {
		m[i] = c.Fill
	}

	reps, elapsed := c.measure(k, m, n, stride)
	r := Result{Kernel: k.Name, N: n, Stride: stride, Reps: reps, Elapsed: elapsed}
	if reps > 0 {
		r.NsPerOp = float64(elapsed.Nanoseconds()) / float64(reps)
	}
	if elapsed > 0 {
		moved := float64(n) * float64(n) * 4 * float64(reps)
		r.MBPerSec = moved / (1 << 20) / elapsed.Seconds()
	}
	return r
}

// Sweep runs every kernel at every size, invoking fn (when non-nil) as
// each case completes. Results come back grouped by kernel in sweep
// order.
func (c Config) Sweep(kernels []Kernel, sizes []int, fn func(Result)) ([]Result, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}
	results := make([]Result, 0, len(kernels)*len(sizes))
	for _, k := range kernels {
		for _, n := range sizes {
			r := c.Run(k, n)
			results = append(results, r)
			if fn != nil {
				fn(r)
			}
		}
	}
	return results, nil
}

func (c Config) measure(k Kernel, m []int32, n, stride int) (int, time.Duration) {
	if c.Reps > 0 {
		return c.Reps, timeReps(k, m, n, stride, c.Reps)
	}
	minTime := c.MinTime
	if minTime <= 0 {
		minTime = time.Second
	}
	reps := 1
	for {
		elapsed := timeReps(k, m, n, stride, reps)
		if elapsed >= minTime || reps >= maxReps {
			return reps, elapsed
		}
		reps *= 2
	}
}

func timeReps(k Kernel, m []int32, n, stride, reps int) time.Duration {
	start := time.Now()
	for i := 0; i < reps; i++ {
		k.Func(m, n, stride)
	}
	return time.Since(start)
}
