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

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/facebook/clockcheck/consistency"
)

// TAP prints results in kselftest flavour of TAP 13
type TAP struct {
	counts
	w    io.Writer
	info []string
	n    int
}

// NewTAP returns TAP reporter writing to w
func NewTAP(w io.Writer, info []string) *TAP {
	return &TAP{w: w, info: info}
}

func (t *TAP) diag(format string, args ...interface{}) {
	fmt.Fprintf(t.w, "# "+format+"\n", args...)
}

// Plan prints TAP header and the plan
func (t *TAP) Plan(n int) {
	fmt.Fprintln(t.w, "TAP version 13")
	for _, line := range t.info {
		t.diag("%s", line)
	}
	fmt.Fprintf(t.w, "1..%d\n", n)
}

// Report prints single test result, failures come with all the samples of the bad batch
func (t *TAP) Report(res *consistency.Result) {
	t.n++
	t.add(res.Verdict)
	switch res.Verdict {
	case consistency.Pass:
		fmt.Fprintf(t.w, "ok %d %-31s\n", t.n, res.Target.Name)
	case consistency.Skip:
		fmt.Fprintf(t.w, "ok %d # SKIP %-31s\n", t.n, res.Target.Name)
	case consistency.Fail:
		t.diag("%s", res.Started.Format(time.ANSIC))
		dump(t.w, "# ", res)
		if res.Violation != nil {
			t.diag("Delta: %d ns", res.Violation.Delta)
		}
		t.diag("%s", res.Finished.Format(time.ANSIC))
		fmt.Fprintf(t.w, "not ok %d %-31s\n", t.n, res.Target.Name)
	}
}

// Finish prints totals
func (t *TAP) Finish() int {
	t.diag("Totals: pass:%d fail:%d xfail:0 xpass:0 skip:%d error:0", t.pass, t.fail, t.skip)
	return t.exitCode()
}
