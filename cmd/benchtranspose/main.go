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

// Command benchtranspose measures the in-place transposition kernels
// across a sweep of matrix sizes and reports per-kernel throughput.
//
// The default run sweeps N from 1000 to 26000, growing by 12/11 per
// step, calibrates repetitions so each case runs for about a second,
// and prints a console table. Results go to stdout (or -o), progress
// and diagnostics to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/cpu"

	"github.com/kuk0/bench-transpose/bench"
	"github.com/kuk0/bench-transpose/cacheinfo"
	"github.com/kuk0/bench-transpose/transpose"
)

var (
	kernelsFlag = flag.String("kernels", "row,block,block2,rec", "comma-separated kernels to run")
	sizesFlag   = flag.String("sizes", "", "explicit comma-separated sizes, overrides the sweep flags")
	startFlag   = flag.Int("start", 1000, "geometric sweep start")
	maxFlag     = flag.Int("max", 26000, "geometric sweep maximum")
	numFlag     = flag.Int("num", 12, "geometric growth numerator")
	denFlag     = flag.Int("den", 11, "geometric growth denominator")
	linearFlag  = flag.String("linear", "", "linear sweep as start:max:step")
	tuneFlag    = flag.String("tune", "", "sweep the block2 outer block as n:lo:hi:step")
	blockFlag   = flag.Int("block", transpose.DefaultBlockSize, "single-level block size")
	innerFlag   = flag.Int("inner", transpose.DefaultInnerBlock, "two-level inner block size")
	outerFlag   = flag.Int("outer", transpose.DefaultOuterBlock, "two-level outer block size")
	padFlag     = flag.Int("pad", transpose.PadResidue, "stride residue mod 64, 0 runs unpadded")
	repsFlag    = flag.Int("reps", 0, "fixed repetitions per case, 0 calibrates")
	minTimeFlag = flag.Duration("mintime", time.Second, "calibration target per case")
	formatFlag  = flag.String("format", "console", "report format: console, csv or json")
	outFlag     = flag.String("o", "", "write the report to a file instead of stdout")
	cpuFlag     = flag.Bool("cpu", false, "print the CPU and cache report, then exit")
	verboseFlag = flag.Bool("v", false, "log sweep diagnostics")
)

func main() {
	flag.Parse()

	if *cpuFlag {
		printEnvReport(os.Stdout)
		return
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "benchtranspose: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var report func(io.Writer, []bench.Result) error
	switch *formatFlag {
	case "console":
		report = bench.WriteConsole
	case "csv":
		report = bench.WriteCSV
	case "json":
		report = bench.WriteJSON
	default:
		return fmt.Errorf("unknown format %q (want console, csv or json)", *formatFlag)
	}
	if *padFlag < 0 || *padFlag >= 64 {
		return fmt.Errorf("pad residue %d outside [0, 64)", *padFlag)
	}

	// Kernels substitutes the package defaults for values <= 0; mirror
	// that here so the divisibility check sees the effective pair.
	inner, outer := *innerFlag, *outerFlag
	if inner <= 0 {
		inner = transpose.DefaultInnerBlock
	}
	if outer <= 0 {
		outer = transpose.DefaultOuterBlock
	}
	if outer < inner || outer%inner != 0 {
		return fmt.Errorf("outer block %d is not a multiple of inner block %d", outer, inner)
	}

	kernels, sizes, err := selection(inner)
	if err != nil {
		return err
	}

	cfg := bench.DefaultConfig()
	cfg.Reps = *repsFlag
	cfg.MinTime = *minTimeFlag
	cfg.Residue = *padFlag

	out := io.Writer(os.Stdout)
	var f *os.File
	if *outFlag != "" {
		f, err = os.Create(*outFlag)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		out = f
	}

	fmt.Fprintf(os.Stderr, "%s/%s: %s\n", runtime.GOOS, runtime.GOARCH, cacheinfo.Detect())
	logger.Debug("sweep configured",
		"kernels", len(kernels), "sizes", len(sizes),
		"reps", cfg.Reps, "mintime", cfg.MinTime, "residue", cfg.Residue)

	total := len(kernels) * len(sizes)
	done := 0
	var progress func(bench.Result)
	var live *uilive.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) {
		live = uilive.New()
		live.Out = os.Stderr
		live.Start()
		progress = func(r bench.Result) {
			done++
			fmt.Fprintf(live, "[%d/%d] %s/%d: %.1f MB/s\n", done, total, r.Kernel, r.N, r.MBPerSec)
		}
	} else {
		progress = func(r bench.Result) {
			done++
			logger.Info("measured", "kernel", r.Kernel, "n", r.N, "reps", r.Reps,
				"mb_per_sec", r.MBPerSec, "done", done, "total", total)
		}
	}

	results, err := cfg.Sweep(kernels, sizes, progress)
	if live != nil {
		live.Stop()
	}
	if err != nil {
		return err
	}

	if err := report(out, results); err != nil {
		return err
	}
	if f != nil {
		return f.Close()
	}
	return nil
}

// selection resolves the -tune, -kernels and size flags into the kernel
// set and size list to measure. -tune replaces both; otherwise explicit
// -sizes win over -linear, which wins over the geometric sweep.
func selection(inner int) ([]bench.Kernel, []int, error) {
	if *tuneFlag != "" {
		return tuneSelection(*tuneFlag, inner)
	}
	kernels, err := selectKernels(*kernelsFlag)
	if err != nil {
		return nil, nil, err
	}
	sizes, err := selectSizes()
	if err != nil {
		return nil, nil, err
	}
	return kernels, sizes, nil
}

func selectKernels(names string) ([]bench.Kernel, error) {
	all := bench.Kernels(*blockFlag, *innerFlag, *outerFlag)
	byName := make(map[string]bench.Kernel, len(all))
	for _, k := range all {
		byName[k.Name] = k
	}
	var kernels []bench.Kernel
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown kernel %q (have row, block, block2, rec)", name)
		}
		kernels = append(kernels, k)
	}
	if len(kernels) == 0 {
		return nil, bench.ErrNoKernels
	}
	return kernels, nil
}

func selectSizes() ([]int, error) {
	if *sizesFlag != "" {
		return parseSizes(*sizesFlag)
	}
	if *linearFlag != "" {
		v, err := splitInts(*linearFlag, 3)
		if err != nil {
			return nil, fmt.Errorf("bad -linear: %w", err)
		}
		sweep := bench.Linear{Start: v[0], Max: v[1], Step: v[2]}
		if sizes := sweep.Values(); len(sizes) > 0 {
			return sizes, nil
		}
		return nil, fmt.Errorf("empty linear sweep %q", *linearFlag)
	}
	sweep := bench.Geometric{Start: *startFlag, Max: *maxFlag, Num: *numFlag, Den: *denFlag}
	if sizes := sweep.Values(); len(sizes) > 0 {
		return sizes, nil
	}
	return nil, fmt.Errorf("empty geometric sweep start=%d max=%d ratio=%d/%d",
		*startFlag, *maxFlag, *numFlag, *denFlag)
}

// tuneSelection builds one block2 kernel per outer block size in the
// range, all measured at the single size n, the experiment the
// two-level defaults were derived from.
func tuneSelection(spec string, inner int) ([]bench.Kernel, []int, error) {
	v, err := splitInts(spec, 4)
	if err != nil {
		return nil, nil, fmt.Errorf("bad -tune: %w", err)
	}
	n, lo, hi, step := v[0], v[1], v[2], v[3]
	if n < 0 || lo < 1 || hi < lo || step < 1 {
		return nil, nil, fmt.Errorf("bad -tune range %q", spec)
	}
	var kernels []bench.Kernel
	for o := lo; o <= hi; o += step {
		if o < inner || o%inner != 0 {
			return nil, nil, fmt.Errorf("-tune outer block %d is not a multiple of inner block %d", o, inner)
		}
		outer := o
		kernels = append(kernels, bench.Kernel{
			Name:   fmt.Sprintf("block2/outer=%d", outer),
			Padded: true,
			Func: func(m []int32, n, stride int) {
				transpose.Block2(m, n, stride, inner, outer)
			},
		})
	}
	return kernels, []int{n}, nil
}

func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad size %q", field)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative size %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", list)
	}
	return sizes, nil
}

func splitInts(s string, want int) ([]int, error) {
	fields := strings.Split(s, ":")
	if len(fields) != want {
		return nil, fmt.Errorf("%q: want %d colon-separated integers", s, want)
	}
	v := make([]int, want)
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%q: bad integer %q", s, field)
		}
		v[i] = n
	}
	return v, nil
}

// printEnvReport prints the runtime identity, the detected cache
// hierarchy, and the load-width feature flags that shape memory
// throughput on the two common architectures.
func printEnvReport(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	h := cacheinfo.Detect()
	fmt.Fprintf(w, "Caches: %s\n", h)
	fmt.Fprintf(w, "Suggested block size for 4-byte elements: %d\n", h.SuggestBlockSize(4))

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w)
		printARM64Features(w)
	case "amd64":
		fmt.Fprintln(w)
		printAMD64Features(w)
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:    %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Fprintf(w, "  HasATOMICS: %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
	fmt.Fprintf(w, "  HasDCPOP:   %v (DC CVAP cache maintenance)\n", cpu.ARM64.HasDCPOP)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:    %v (16-byte loads)\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasAVX:     %v (32-byte loads)\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasAVX512F: %v (64-byte loads)\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasERMS:    %v (fast rep movsb)\n", cpu.X86.HasERMS)
}
