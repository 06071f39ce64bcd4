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

// InOrder returns true if a is not later than b.
// Seconds are compared as unsigned to avoid false positives on 2038 rollover.
func InOrder(a, b clock.Timestamp) bool {
	if a.Sec < b.Sec {
		return true
	}
	if a.Sec > b.Sec {
		return false
	}
	return a.Nsec <= b.Nsec
}

// Delta returns how far back in time b is from a, in nanoseconds
func Delta(a, b clock.Timestamp) int64 {
	return int64(a.Nanoseconds() - b.Nanoseconds())
}

// Elapsed returns whole seconds passed between two readings of the same clock
func Elapsed(from, to clock.Timestamp) int64 {
	return int64(to.Sec - from.Sec)
}
