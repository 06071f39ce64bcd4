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
	"fmt"

	"github.com/facebook/clockcheck/clock"
)

// Violation describes a pair of readings where the clock went backwards
type Violation struct {
	// Index of Earlier in the batch, Later is at Index+1
	Index   int             `json:"index"`
	Earlier clock.Timestamp `json:"earlier"`
	Later   clock.Timestamp `json:"later"`
	// Delta is how far back the clock jumped, in nanoseconds
	Delta int64 `json:"delta_ns"`
}

func (v *Violation) String() string {
	return fmt.Sprintf("sample %d (%s) is after sample %d (%s) by %dns", v.Index, v.Earlier, v.Index+1, v.Later, v.Delta)
}

// Detect scans the batch and returns the last pair that is out of order, or nil.
// Later violations overwrite earlier ones, so with several in one batch only the last is reported.
func Detect(b *Batch) *Violation {
	inconsistent := -1
	for i := 0; i < len(b)-1; i++ {
		if !InOrder(b[i], b[i+1]) {
			inconsistent = i
		}
	}
	if inconsistent < 0 {
		return nil
	}
	return &Violation{
		Index:   inconsistent,
		Earlier: b[inconsistent],
		Later:   b[inconsistent+1],
		Delta:   Delta(b[inconsistent], b[inconsistent+1]),
	}
}
