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

// Package stats keeps clock check counters and exports them to Prometheus
package stats

import (
	"sync"
)

// Server receives clock check metrics
type Server interface {
	// Add increments a counter by delta
	Add(key string, delta int64)
	// Set overwrites the value, for gauges like elapsed seconds
	Set(key string, val int64)
}

// Stats is an in-memory Server, safe for concurrent use
type Stats struct {
	mu     sync.Mutex
	values map[string]int64
}

// New returns empty Stats
func New() *Stats {
	return &Stats{values: map[string]int64{}}
}

// Add increments a counter by delta
func (s *Stats) Add(key string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] += delta
}

// Set overwrites the value
func (s *Stats) Set(key string, val int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = val
}

// Snapshot returns a copy of all values
func (s *Stats) Snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make(map[string]int64, len(s.values))
	for k, v := range s.values {
		ret[k] = v
	}
	return ret
}
