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
	"errors"
	"fmt"

	"github.com/facebook/clockcheck/clock"
)

// BatchSize is how many readings we take in one go
const BatchSize = 64

// ErrReadFailed means a clock that passed the support probe failed to read
var ErrReadFailed = errors.New("clock read failed")

// Batch is a list of consecutive readings of one clock
type Batch [BatchSize]clock.Timestamp

// Sample fills the batch with readings of the clock.
// Nothing but the reads happens in the loop, any gap between them hides the problem we look for.
func Sample(r clock.Reader, id clock.ID, b *Batch) error {
	var err error
	for i := range b {
		if b[i], err = r.Read(id); err != nil {
			return fmt.Errorf("%w: sample %d: %w", ErrReadFailed, i, err)
		}
	}
	return nil
}
