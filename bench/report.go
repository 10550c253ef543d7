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

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteConsole renders results as an aligned table, one row per case,
// with digit-grouped numbers in the measurement columns.
func WriteConsole(w io.Writer, results []Result) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BENCHMARK\tSTRIDE\tREPS\tNS/OP\tMB/S")
	for _, r := range results {
		fmt.Fprintf(tw, "%s/%d\t%s\t%s\t%s\t%s\n",
			r.Kernel, r.N,
			p.Sprintf("%d", r.Stride),
			p.Sprintf("%d", r.Reps),
			p.Sprintf("%.0f", r.NsPerOp),
			p.Sprintf("%.1f", r.MBPerSec))
	}
	return tw.Flush()
}

// WriteCSV emits a header row followed by one record per case.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kernel", "n", "stride", "reps", "ns_per_op", "mb_per_sec"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.Kernel,
			strconv.Itoa(r.N),
			strconv.Itoa(r.Stride),
			strconv.Itoa(r.Reps),
			strconv.FormatFloat(r.NsPerOp, 'f', 2, 64),
			strconv.FormatFloat(r.MBPerSec, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON emits the results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
