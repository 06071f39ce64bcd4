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
	"github.com/fatih/color"
)

var okString = color.GreenString("[ OK ]")
var skipString = color.YellowString("[SKIP]")
var failString = color.RedString("[FAIL]")

// Text prints human readable results
type Text struct {
	counts
	w    io.Writer
	info []string
}

// NewText returns Text reporter writing to w
func NewText(w io.Writer, info []string) *Text {
	return &Text{w: w, info: info}
}

// Plan prints host info and how many clocks we test
func (t *Text) Plan(n int) {
	for _, line := range t.info {
		fmt.Fprintln(t.w, line)
	}
	fmt.Fprintf(t.w, "Testing %d clocks\n", n)
}

// Report prints single result
func (t *Text) Report(res *consistency.Result) {
	t.add(res.Verdict)
	switch res.Verdict {
	case consistency.Pass:
		fmt.Fprintf(t.w, "%s %-31s %ds, %d batches, step mean %.0fns stddev %.0fns max %dns\n",
			okString, res.Target.Name, res.Elapsed(), res.Batches, res.Steps.Mean, res.Steps.Stddev, res.Steps.Max)
	case consistency.Skip:
		fmt.Fprintf(t.w, "%s %-31s %s\n", skipString, res.Target.Name, res.Reason)
	case consistency.Fail:
		fmt.Fprintf(t.w, "%s %-31s\n", failString, res.Target.Name)
		fmt.Fprintf(t.w, "Test started at %s\n", res.Started.Format(time.ANSIC))
		if res.Violation != nil {
			fmt.Fprintln(t.w, color.RedString("%s", res.Violation))
			dump(t.w, "", res)
			fmt.Fprintf(t.w, "Delta: %s ns\n", color.RedString("%d", res.Violation.Delta))
		}
		fmt.Fprintf(t.w, "Inconsistency found at %s\n", res.Finished.Format(time.ANSIC))
	}
}

// Finish prints summary
func (t *Text) Finish() int {
	fmt.Fprintf(t.w, "Passed: %d, failed: %d, skipped: %d\n", t.pass, t.fail, t.skip)
	return t.exitCode()
}
