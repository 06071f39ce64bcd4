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
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebook/clockcheck/clock"
	"github.com/facebook/clockcheck/stats"
	log "github.com/sirupsen/logrus"
)

// Duration is how long to test each clock, in whole seconds
type Duration int64

// Forever makes the runner test a clock until it fails or the run is cancelled
const Forever Duration = -1

func (d Duration) String() string {
	if d == Forever {
		return "forever"
	}
	return fmt.Sprintf("%ds", int64(d))
}

// Reporter receives results as soon as each clock is done
type Reporter interface {
	// Plan is called once with the number of clocks we are about to test
	Plan(n int)
	Report(res *Result)
}

// Runner tests clocks one by one
type Runner struct {
	Reader   clock.Reader
	Catalog  *Catalog
	Duration Duration
	// Stats is optional
	Stats stats.Server
	// Now returns wall clock time, time.Now if nil
	Now func() time.Time
}

// NewRunner returns Runner using the reader both for probing and sampling
func NewRunner(r clock.Reader, d Duration, s stats.Server) *Runner {
	return &Runner{
		Reader:   r,
		Catalog:  NewCatalog(r),
		Duration: d,
		Stats:    s,
		Now:      time.Now,
	}
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// key is clockcheck.<clock>.<name> for a target, and clockcheck.<name> for the run
func key(target Target, name string) string {
	if target.Name != "" {
		return fmt.Sprintf("clockcheck.%s.%s", target.Name, name)
	}
	return fmt.Sprintf("clockcheck.%s", name)
}

func (r *Runner) count(target Target, name string, val int64) {
	if r.Stats != nil {
		r.Stats.Add(key(target, name), val)
	}
}

func (r *Runner) gauge(target Target, name string, val int64) {
	if r.Stats != nil {
		r.Stats.Set(key(target, name), val)
	}
}

// inBudget tells if the clock should be sampled again.
// Elapsed is compared as unsigned, so a clock stepped back behind the start is done.
func (r *Runner) inBudget(res *Result) bool {
	if r.Duration == Forever {
		return true
	}
	return uint64(res.Elapsed()) < uint64(r.Duration)
}

// Test checks one clock and returns the result.
// Error is only returned when the run can't continue: clock read failed or ctx is done.
func (r *Runner) Test(ctx context.Context, target Target) (*Result, error) {
	res := &Result{Target: target, Started: r.now()}
	if !r.Catalog.Supported(target) {
		res.Verdict = Skip
		res.Reason = "clock is not supported"
		res.Finished = r.now()
		return res, nil
	}

	// thread cpu time only makes sense if all reads come from the same thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	start, err := r.Reader.Read(target.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", target.Name, ErrReadFailed, err)
	}
	res.First, res.Last = start, start
	log.Debugf("testing %s for %s starting at %s", target.Name, r.Duration, start)

	var b Batch
	steps := newStepCollector()
	for r.inBudget(res) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := Sample(r.Reader, target.ID, &b); err != nil {
			return nil, fmt.Errorf("%s: %w", target.Name, err)
		}
		res.Batches++
		r.count(target, "batches", 1)

		if v := Detect(&b); v != nil {
			res.Finished = r.now()
			res.Verdict = Fail
			res.Violation = v
			failed := b
			res.Batch = &failed
			res.Steps = steps.stats()
			r.count(target, "violations", 1)
			if log.IsLevelEnabled(log.DebugLevel) {
				log.Debugf("%s: %s, steps before violation: %s", target.Name, v, spew.Sdump(res.Steps))
			}
			return res, nil
		}
		steps.add(&b)
		res.Last = b[0]
		r.gauge(target, "elapsed", res.Elapsed())
	}
	res.Finished = r.now()
	res.Verdict = Pass
	res.Steps = steps.stats()
	log.Debugf("%s passed after %d batches", target.Name, res.Batches)
	return res, nil
}

// Run tests all targets in order, stopping at the first failure.
// Returned verdict is Fail if any clock failed and Pass otherwise, skipped clocks don't fail the run.
func (r *Runner) Run(ctx context.Context, targets []Target, rep Reporter) (Verdict, error) {
	rep.Plan(len(targets))
	for _, target := range targets {
		res, err := r.Test(ctx, target)
		if err != nil {
			return Fail, err
		}
		rep.Report(res)
		switch res.Verdict {
		case Fail:
			r.count(Target{}, "failed", 1)
			return Fail, nil
		case Skip:
			r.count(Target{}, "skipped", 1)
		default:
			r.count(Target{}, "passed", 1)
		}
	}
	return Pass, nil
}
