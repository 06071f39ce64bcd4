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

	"golang.org/x/sys/unix"
)

// NSecPerSec is the number of nanoseconds in a second
const NSecPerSec = 1000000000

// Timestamp is a single clock reading.
// Sec is unsigned on purpose, see InOrder in the consistency package.
type Timestamp struct {
	Sec  uint64 `json:"sec"`
	Nsec uint32 `json:"nsec"`
}

// TimestampFromTimespec converts unix.Timespec into Timestamp
func TimestampFromTimespec(ts unix.Timespec) Timestamp {
	return Timestamp{
		Sec:  uint64(ts.Sec),
		Nsec: uint32(ts.Nsec),
	}
}

// Nanoseconds returns total nanoseconds, wrapping on overflow like the kernel's u64 math
func (t Timestamp) Nanoseconds() uint64 {
	return t.Sec*NSecPerSec + uint64(t.Nsec)
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d:%d", t.Sec, t.Nsec)
}
