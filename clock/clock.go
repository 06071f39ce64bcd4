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
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// PPBToTimexPPM is what we use to conver PPB to PPM.
// man clock_adjtime(2):
// In struct timex, freq, ppsfreq, and stabil are ppm (parts per million) with a 16-bit fractional part.
// To covert value where 2^16=65536 is 1 ppm to ppb or back, we need this multiplier
const PPBToTimexPPM = 65.536

// ErrUnsupported is returned when the platform rejects a clock id
var ErrUnsupported = errors.New("clock is not supported")

// Reader reads a clock
type Reader interface {
	Read(id ID) (Timestamp, error)
}

// System reads clocks through clock_gettime(2)
type System struct{}

// Read returns current value of the clock.
// EINVAL means there is no such clock on this kernel.
func (System) Read(id ID) (Timestamp, error) {
	if id.Deprecated() {
		return Timestamp{}, ErrUnsupported
	}
	var ts unix.Timespec
	if err := unix.ClockGettime(int32(id), &ts); err != nil {
		if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOTSUP) {
			return Timestamp{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
		}
		return Timestamp{}, fmt.Errorf("clock_gettime(%d): %w", id, err)
	}
	return TimestampFromTimespec(ts), nil
}

// Resolution returns clock resolution reported by clock_getres(2)
func Resolution(id ID) (time.Duration, error) {
	if id.Deprecated() {
		return 0, ErrUnsupported
	}
	var ts unix.Timespec
	if err := unix.ClockGetres(int32(id), &ts); err != nil {
		return 0, err
	}
	return time.Duration(ts.Nano()), nil
}

// FrequencyPPB reads clock frequency in PPB
func FrequencyPPB(id ID) (freqPPB float64, state int, err error) {
	tx := &unix.Timex{}
	state, err = unix.ClockAdjtime(int32(id), tx)
	// man(2) clock_adjtime
	freqPPB = float64(tx.Freq) / PPBToTimexPPM
	return freqPPB, state, err
}

// MaxFreqPPB returns maximum frequency adjustment supported by the clock
func MaxFreqPPB(id ID) (freqPPB float64, state int, err error) {
	tx := &unix.Timex{}
	state, err = unix.ClockAdjtime(int32(id), tx)
	if err != nil {
		return 0.0, state, err
	}
	// man(2) clock_adjtime
	freqPPB = float64(tx.Tolerance) / PPBToTimexPPM
	if freqPPB == 0 {
		freqPPB = 500000
	}
	return freqPPB, state, nil
}

// clock states from usr/include/linux/timex.h
const (
	timeOK    = 0
	timeIns   = 1
	timeDel   = 2
	timeOOP   = 3
	timeWait  = 4
	timeError = 5
)

var stateToString = map[int]string{
	timeOK:    "TIME_OK",
	timeIns:   "TIME_INS",
	timeDel:   "TIME_DEL",
	timeOOP:   "TIME_OOP",
	timeWait:  "TIME_WAIT",
	timeError: "TIME_ERROR",
}

// StateString returns name of the clock state returned by clock_adjtime(2)
func StateString(state int) string {
	if s, ok := stateToString[state]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", state)
}
