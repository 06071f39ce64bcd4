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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestTimestampFromTimespec(t *testing.T) {
	ts := TimestampFromTimespec(unix.Timespec{Sec: 1653574589, Nsec: 806127700})
	require.Equal(t, Timestamp{Sec: 1653574589, Nsec: 806127700}, ts)
	require.Equal(t, "1653574589:806127700", ts.String())
}

func TestTimestampFromTimespecNegative(t *testing.T) {
	// signed seconds past the rollover become large unsigned values
	ts := TimestampFromTimespec(unix.Timespec{Sec: -1, Nsec: 0})
	require.Equal(t, uint64(math.MaxUint64), ts.Sec)
}

func TestTimestampNanoseconds(t *testing.T) {
	require.Equal(t, uint64(10000000500), Timestamp{Sec: 10, Nsec: 500}.Nanoseconds())
	require.Equal(t, uint64(0), Timestamp{}.Nanoseconds())
}
