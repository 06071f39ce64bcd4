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
	"encoding/json"
	"io"

	"github.com/facebook/clockcheck/clock"
	"github.com/facebook/clockcheck/consistency"
	log "github.com/sirupsen/logrus"
)

type jsonResult struct {
	Clock string   `json:"clock"`
	ID    clock.ID `json:"id"`
	*consistency.Result
	Samples []clock.Timestamp `json:"samples,omitempty"`
}

// JSON prints one json object per result
type JSON struct {
	counts
	enc *json.Encoder
}

// NewJSON returns JSON reporter writing to w
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Plan is a no-op, json lines have no header
func (j *JSON) Plan(_ int) {}

// Report prints the result as a single line
func (j *JSON) Report(res *consistency.Result) {
	j.add(res.Verdict)
	out := jsonResult{
		Clock:  res.Target.Name,
		ID:     res.Target.ID,
		Result: res,
	}
	if res.Batch != nil {
		out.Samples = res.Batch[:]
	}
	if err := j.enc.Encode(out); err != nil {
		log.Errorf("failed to write result for %s: %v", res.Target.Name, err)
	}
}

// Finish returns exit code
func (j *JSON) Finish() int {
	return j.exitCode()
}
