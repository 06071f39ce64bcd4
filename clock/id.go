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

package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a Linux clock identifier as accepted by clock_gettime(2)
type ID int32

// Clock ids from include/uapi/linux/time.h
const (
	Realtime        ID = 0
	Monotonic       ID = 1
	ProcessCPUTime  ID = 2
	ThreadCPUTime   ID = 3
	MonotonicRaw    ID = 4
	RealtimeCoarse  ID = 5
	MonotonicCoarse ID = 6
	Boottime        ID = 7
	RealtimeAlarm   ID = 8
	BoottimeAlarm   ID = 9
	// SGICycle is CLOCK_SGI_CYCLE, a.k.a. CLOCK_HWSPECIFIC. Removed from the kernel, never read it.
	SGICycle ID = 10
	TAI      ID = 11
)

// MaxID is the last static clock id
const MaxID = TAI

var idToString = map[ID]string{
	Realtime:        "CLOCK_REALTIME",
	Monotonic:       "CLOCK_MONOTONIC",
	ProcessCPUTime:  "CLOCK_PROCESS_CPUTIME_ID",
	ThreadCPUTime:   "CLOCK_THREAD_CPUTIME_ID",
	MonotonicRaw:    "CLOCK_MONOTONIC_RAW",
	RealtimeCoarse:  "CLOCK_REALTIME_COARSE",
	MonotonicCoarse: "CLOCK_MONOTONIC_COARSE",
	Boottime:        "CLOCK_BOOTTIME",
	RealtimeAlarm:   "CLOCK_REALTIME_ALARM",
	BoottimeAlarm:   "CLOCK_BOOTTIME_ALARM",
	TAI:             "CLOCK_TAI",
}

func (id ID) String() string {
	if s, ok := idToString[id]; ok {
		return s
	}
	return "UNKNOWN_CLOCKID"
}

// Deprecated tells if the clock id must never be passed to clock_gettime
func (id ID) Deprecated() bool {
	return id == SGICycle
}

// Dynamic tells if the id refers to a dynamic posix clock, like a PHC opened by fd
func (id ID) Dynamic() bool {
	return id < 0
}

// ParseID accepts either a numeric clock id or a clock name.
// Names are case insensitive and the CLOCK_ prefix is optional, so "monotonic_raw" works.
func ParseID(s string) (ID, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		if n < 0 || ID(n) > MaxID {
			return 0, fmt.Errorf("clock id %d is out of range [0, %d]", n, MaxID)
		}
		return ID(n), nil
	}
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "CLOCK_") {
		name = "CLOCK_" + name
	}
	for id, str := range idToString {
		if str == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown clock %q", s)
}

// UnmarshalYAML allows clock ids in config files to be given by name or number
func (id *ID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML writes clock id as its name
func (id ID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}
