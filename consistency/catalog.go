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

	"github.com/facebook/clockcheck/clock"
	log "github.com/sirupsen/logrus"
)

// Target is a clock we test
type Target struct {
	ID   clock.ID
	Name string
}

// NewTarget returns Target for static clock id
func NewTarget(id clock.ID) Target {
	return Target{ID: id, Name: id.String()}
}

//go:generate mockgen -destination=reader_mock_test.go -package=consistency github.com/facebook/clockcheck/clock Reader

// Catalog knows which clocks exist and which of them the platform supports
type Catalog struct {
	reader clock.Reader
}

// NewCatalog creates Catalog probing clocks with the reader
func NewCatalog(r clock.Reader) *Catalog {
	return &Catalog{reader: r}
}

// Targets returns clocks to test: either only start, or all clocks from start up to clock.MaxID
func (c *Catalog) Targets(start clock.ID, single bool) []Target {
	if single {
		return []Target{NewTarget(start)}
	}
	targets := []Target{}
	for id := start; id <= clock.MaxID; id++ {
		targets = append(targets, NewTarget(id))
	}
	return targets
}

// Supported does a single trial read of the clock.
// Deprecated clocks are never read.
func (c *Catalog) Supported(t Target) bool {
	if t.ID.Deprecated() {
		log.Debugf("%s (%d) is deprecated, not probing", t.Name, t.ID)
		return false
	}
	if _, err := c.reader.Read(t.ID); err != nil {
		if !errors.Is(err, clock.ErrUnsupported) {
			log.Warningf("probing %s: %v", t.Name, err)
		}
		return false
	}
	return true
}
