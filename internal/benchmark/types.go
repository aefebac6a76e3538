// Package benchmark holds the timing results of benchmarked commands and
// the statistics derived from them.
package benchmark

import (
	"time"
)

// MinExecutionTime is the threshold below which a command's mean runtime
// is too short to measure reliably. Results faster than this trigger a
// timing-quality warning.
const MinExecutionTime = 5 * time.Millisecond

// Result holds the aggregate timing statistics for one benchmarked
// command. All durations are in seconds. A Result is produced once per
// command and never mutated afterwards.
type Result struct {
	Command   string    `json:"command" yaml:"command"`
	Mean      float64   `json:"mean" yaml:"mean"`
	Stddev    float64   `json:"stddev" yaml:"stddev"`
	Median    float64   `json:"median" yaml:"median"`
	User      float64   `json:"user" yaml:"user"`
	System    float64   `json:"system" yaml:"system"`
	Min       float64   `json:"min" yaml:"min"`
	Max       float64   `json:"max" yaml:"max"`
	Times     []float64 `json:"times,omitempty" yaml:"times,omitempty"`
	Parameter string    `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// Run is a collection of results from a single hyperbench invocation.
type Run struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Commit    string    `json:"commit,omitempty" yaml:"commit,omitempty"`
	Results   []Result  `json:"results" yaml:"results"`
}

// RelativeSpeed annotates a Result with its speed relative to the
// fastest result of a comparison set.
type RelativeSpeed struct {
	Result *Result

	// Ratio is this result's mean divided by the fastest mean; 1.0
	// for the fastest result itself.
	Ratio float64

	// RatioStddev is the propagated uncertainty of Ratio, assuming
	// the two means are independent measurements.
	RatioStddev float64

	// PercentChange is how much slower this result is than the
	// fastest, relative to this result's own mean.
	PercentChange float64

	IsFastest bool
}
