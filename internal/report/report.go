// Package report summarizes repeated traversal runs and renders them as a
// terminal table or a YAML document.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aclements/go-moremath/stats"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of one `hybridbfs run` invocation
type Report struct {
	Graph       GraphInfo    `yaml:"graph"`
	Root        int          `yaml:"root"`
	Workers     int          `yaml:"workers"`
	Threshold   float64      `yaml:"threshold"`
	Results     []Result     `yaml:"results"`
	Comparisons []Comparison `yaml:"comparisons,omitempty"`
}

// GraphInfo identifies the input graph
type GraphInfo struct {
	Location string `yaml:"location"`
	Nodes    int    `yaml:"nodes"`
	Edges    int    `yaml:"edges"`
}

// Result summarizes the runs of one strategy
type Result struct {
	Strategy    string  `yaml:"strategy"`
	Runs        int     `yaml:"runs"`
	MeanMS      float64 `yaml:"mean_ms"`
	MedianMS    float64 `yaml:"median_ms"`
	MinMS       float64 `yaml:"min_ms"`
	MaxMS       float64 `yaml:"max_ms"`
	Rounds      int     `yaml:"rounds"`
	PullRounds  int     `yaml:"pull_rounds"`
	Reachable   int     `yaml:"reachable"`
	MaxDistance int32   `yaml:"max_distance"`
	Verified    *bool   `yaml:"verified,omitempty"`
}

// Comparison is a Mann-Whitney U-test of two strategies' run times
type Comparison struct {
	Baseline  string  `yaml:"baseline"`
	Candidate string  `yaml:"candidate"`
	Speedup   float64 `yaml:"speedup"` // baseline median / candidate median
	P         float64 `yaml:"p_value"`
}

// Summarize fills the timing fields of a Result from per-run durations
func Summarize(strategy string, durations []time.Duration) Result {
	r := Result{Strategy: strategy, Runs: len(durations)}
	if len(durations) == 0 {
		return r
	}
	s := stats.Sample{Xs: millis(durations)}
	r.MeanMS = s.Mean()
	r.MedianMS = s.Quantile(0.5)
	r.MinMS, r.MaxMS = s.Bounds()
	return r
}

// Distances fills the reachability fields of r from a distance buffer
func (r *Result) Distances(dist []int32) {
	r.Reachable, r.MaxDistance = 0, 0
	for _, d := range dist {
		if d >= 0 {
			r.Reachable++
			r.MaxDistance = max(r.MaxDistance, d)
		}
	}
}

// Compare tests whether two samples of run times differ.
// ok is false when the test cannot be run (too few or all-equal samples).
func Compare(baseline, candidate string, a, b []time.Duration) (c Comparison, ok bool, err error) {
	xa, xb := millis(a), millis(b)
	res, err := stats.MannWhitneyUTest(xa, xb, stats.LocationDiffers)
	if errors.Is(err, stats.ErrSampleSize) || errors.Is(err, stats.ErrSamplesEqual) {
		return Comparison{}, false, nil
	}
	if err != nil {
		return Comparison{}, false, fmt.Errorf("compare %s and %s: %w", baseline, candidate, err)
	}
	c = Comparison{Baseline: baseline, Candidate: candidate, P: res.P}
	if mb := (stats.Sample{Xs: xb}).Quantile(0.5); mb > 0 {
		c.Speedup = stats.Sample{Xs: xa}.Quantile(0.5) / mb
	}
	return c, true, nil
}

// WriteYAML encodes r to w with two-space indentation
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a report written by WriteYAML
func ReadYAML(rd io.Reader) (*Report, error) {
	var r Report
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}

func millis(ds []time.Duration) []float64 {
	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = float64(d) / float64(time.Millisecond)
	}
	return xs
}
