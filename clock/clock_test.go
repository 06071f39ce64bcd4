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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemRead(t *testing.T) {
	r := System{}
	a, err := r.Read(Monotonic)
	require.NoError(t, err)
	b, err := r.Read(Monotonic)
	require.NoError(t, err)
	require.True(t, a.Sec < b.Sec || (a.Sec == b.Sec && a.Nsec <= b.Nsec))
	require.Less(t, a.Nsec, uint32(NSecPerSec))
}

func TestSystemReadDeprecated(t *testing.T) {
	_, err := System{}.Read(SGICycle)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestSystemReadUnknown(t *testing.T) {
	_, err := System{}.Read(ID(64))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestResolution(t *testing.T) {
	res, err := Resolution(Monotonic)
	require.NoError(t, err)
	require.Positive(t, res)

	_, err = Resolution(SGICycle)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "TIME_OK", StateString(0))
	require.Equal(t, "TIME_ERROR", StateString(5))
	require.Equal(t, "UNKNOWN(42)", StateString(42))
}

func TestFrequencyRealtime(t *testing.T) {
	_, _, err := FrequencyPPB(Realtime)
	if err != nil {
		t.Skipf("clock_adjtime is not permitted here: %v", err)
	}
	maxFreq, state, err := MaxFreqPPB(Realtime)
	require.NoError(t, err)
	require.Positive(t, maxFreq)
	require.NotEmpty(t, StateString(state))
}
