// Package persist implements the engine's two serialization boundaries:
// a per-step benchmark log (encoding/csv) and a full state snapshot
// (encoding/json) for crash recovery / inspection.
package persist

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// BenchmarkRecord is one logged planning step, matching spec.md §6's
// CSV-like line: map_name,step,planner,handler,success,elapsed_seconds,
// "len_1|len_2|...|len_n","count_1|count_2|...|count_n".
type BenchmarkRecord struct {
	MapName          string
	Step             int
	Planner          string
	Handler          string
	Success          bool
	ElapsedSeconds   float64
	TrajectoryLens   []int
	TrajectoryCounts []int
}

// BenchmarkWriter appends BenchmarkRecords to an underlying csv.Writer.
type BenchmarkWriter struct {
	w *csv.Writer
}

// NewBenchmarkWriter wraps w in a csv.Writer.
func NewBenchmarkWriter(w io.Writer) *BenchmarkWriter {
	return &BenchmarkWriter{w: csv.NewWriter(w)}
}

// Write appends one record and flushes.
func (bw *BenchmarkWriter) Write(r BenchmarkRecord) error {
	lens := make([]string, len(r.TrajectoryLens))
	for i, v := range r.TrajectoryLens {
		lens[i] = strconv.FormatFloat(float64(v), 'f', 4, 64)
	}
	counts := make([]string, len(r.TrajectoryCounts))
	for i, v := range r.TrajectoryCounts {
		counts[i] = strconv.Itoa(v)
	}

	row := []string{
		r.MapName,
		strconv.Itoa(r.Step),
		r.Planner,
		r.Handler,
		strconv.FormatBool(r.Success),
		strconv.FormatFloat(r.ElapsedSeconds, 'f', 4, 64),
		strings.Join(lens, "|"),
		strings.Join(counts, "|"),
	}
	if err := bw.w.Write(row); err != nil {
		return err
	}
	bw.w.Flush()
	return bw.w.Error()
}
