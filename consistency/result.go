/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package consistency

import (
	"time"

	"github.com/eclesh/welford"
	"github.com/facebook/clockcheck/clock"
)

// Verdict is the outcome of testing one clock
type Verdict int

// Possible verdicts
const (
	Pass Verdict = iota
	Fail
	Skip
)

var verdictToString = map[Verdict]string{
	Pass: "PASS",
	Fail: "FAIL",
	Skip: "SKIP",
}

func (v Verdict) String() string {
	return verdictToString[v]
}

// MarshalText implements encoding.TextMarshaler
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// StepStats describes steps between adjacent readings, in nanoseconds
type StepStats struct {
	Samples int64   `json:"samples"`
	Mean    float64 `json:"mean_ns"`
	Stddev  float64 `json:"stddev_ns"`
	Max     uint64  `json:"max_ns"`
}

type stepCollector struct {
	s       *welford.Stats
	samples int64
	max     uint64
}

func newStepCollector() *stepCollector {
	return &stepCollector{s: welford.New()}
}

// add consumes a batch that is known to be in order
func (c *stepCollector) add(b *Batch) {
	for i := 0; i < len(b)-1; i++ {
		step := b[i+1].Nanoseconds() - b[i].Nanoseconds()
		c.s.Add(float64(step))
		c.samples++
		c.max = max(c.max, step)
	}
}

func (c *stepCollector) stats() StepStats {
	if c.samples == 0 {
		return StepStats{}
	}
	return StepStats{
		Samples: c.samples,
		Mean:    c.s.Mean(),
		Stddev:  c.s.Stddev(),
		Max:     c.max,
	}
}

// Result is what we get after testing one clock
type Result struct {
	Target  Target  `json:"-"`
	Verdict Verdict `json:"verdict"`
	// Reason is set for skipped clocks
	Reason string `json:"reason,omitempty"`
	// Started is wall clock time when the test started
	Started time.Time `json:"started"`
	// Finished is wall clock time when the test ended, or the inconsistency was found
	Finished time.Time `json:"finished"`
	// First is the very first reading, Last is the first reading of the last batch
	First   clock.Timestamp `json:"first"`
	Last    clock.Timestamp `json:"last"`
	Batches int64           `json:"batches"`
	Steps   StepStats       `json:"steps"`
	// Violation and the Batch it was found in, only for failed clocks
	Violation *Violation `json:"violation,omitempty"`
	Batch     *Batch     `json:"-"`
}

// Elapsed returns whole seconds covered by the test on the clock itself
func (r *Result) Elapsed() int64 {
	return Elapsed(r.First, r.Last)
}
