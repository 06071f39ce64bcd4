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

// Package report prints clock check results
package report

import (
	"fmt"
	"io"

	"github.com/facebook/clockcheck/consistency"
)

// Supported formats
const (
	FormatTAP  = "tap"
	FormatJSON = "json"
	FormatText = "text"
)

// Reporter prints results and tells the exit code once everything is reported
type Reporter interface {
	consistency.Reporter
	// Finish prints summary and returns process exit code
	Finish() int
}

// exit codes from tools/testing/selftests/kselftest.h
const (
	ExitPass = 0
	ExitFail = 1
)

// counts keeps track of reported verdicts
type counts struct {
	pass, fail, skip int
}

func (c *counts) add(v consistency.Verdict) {
	switch v {
	case consistency.Pass:
		c.pass++
	case consistency.Fail:
		c.fail++
	case consistency.Skip:
		c.skip++
	}
}

func (c *counts) exitCode() int {
	if c.fail > 0 {
		return ExitFail
	}
	return ExitPass
}

// New returns Reporter for the format. Info lines are printed as a header where format allows it.
func New(format string, w io.Writer, info []string) (Reporter, error) {
	switch format {
	case FormatTAP:
		return NewTAP(w, info), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatText:
		return NewText(w, info), nil
	}
	return nil, fmt.Errorf("unsupported format %q, must be either %q, %q or %q", format, FormatTAP, FormatJSON, FormatText)
}

// markers around the pair of samples that are out of order
const separator = "--------------------"

// dump writes the failed batch the way kselftest prints it
func dump(w io.Writer, prefix string, res *consistency.Result) {
	if res.Batch == nil || res.Violation == nil {
		return
	}
	for i, ts := range res.Batch {
		if i == res.Violation.Index {
			fmt.Fprintf(w, "%s%s\n", prefix, separator)
		}
		fmt.Fprintf(w, "%s%d:%d\n", prefix, ts.Sec, ts.Nsec)
		if i == res.Violation.Index+1 {
			fmt.Fprintf(w, "%s%s\n", prefix, separator)
		}
	}
}
