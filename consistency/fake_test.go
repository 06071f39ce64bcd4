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
	"github.com/facebook/clockcheck/clock"
)

// fakeClock moves forward by step on every read
type fakeClock struct {
	now   uint64
	step  uint64
	reads int
	// back makes read number N return a value moved back by that many ns
	back   map[int]uint64
	onRead func(n int)
}

func (f *fakeClock) read() clock.Timestamp {
	v := f.now
	if b, ok := f.back[f.reads]; ok {
		v -= b
	}
	f.now += f.step
	f.reads++
	if f.onRead != nil {
		f.onRead(f.reads)
	}
	return clock.Timestamp{Sec: v / clock.NSecPerSec, Nsec: uint32(v % clock.NSecPerSec)}
}

// fakeReader only supports clocks it has
type fakeReader map[clock.ID]*fakeClock

func (r fakeReader) Read(id clock.ID) (clock.Timestamp, error) {
	c, ok := r[id]
	if !ok {
		return clock.Timestamp{}, clock.ErrUnsupported
	}
	return c.read(), nil
}

type fakeReporter struct {
	plan    int
	results []*Result
}

func (r *fakeReporter) Plan(n int) {
	r.plan = n
}

func (r *fakeReporter) Report(res *Result) {
	r.results = append(r.results, res)
}
