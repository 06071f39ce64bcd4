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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/facebook/clockcheck/clock"
	"github.com/facebook/clockcheck/consistency"
	"github.com/stretchr/testify/require"
)

func TestClockRowUnsupported(t *testing.T) {
	catalog := consistency.NewCatalog(&steadyReader{})
	row := clockRow(catalog, consistency.NewTarget(clock.SGICycle))
	require.Equal(t, []string{"10", "UNKNOWN_CLOCKID", "no", "-", "-", "-", "-"}, row)
}

func TestClockRowDynamic(t *testing.T) {
	catalog := consistency.NewCatalog(&steadyReader{})
	row := clockRow(catalog, consistency.Target{ID: clock.ID(-29), Name: "/dev/ptp0"})
	require.Equal(t, []string{"dynamic", "/dev/ptp0", "no", "-", "-", "-", "-"}, row)
}

func TestClockRowRealtimeAdjtime(t *testing.T) {
	if _, _, err := clock.FrequencyPPB(clock.Realtime); err != nil {
		t.Skipf("clock_adjtime is not permitted here: %v", err)
	}
	catalog := consistency.NewCatalog(clock.System{})
	row := clockRow(catalog, consistency.NewTarget(clock.Realtime))
	require.Len(t, row, 7)
	require.Equal(t, "yes", row[2])
	require.NotEqual(t, "-", row[4])
	require.NotEqual(t, "-", row[5])
	require.NotEqual(t, "-", row[6])
}

func TestClockRowSupported(t *testing.T) {
	catalog := consistency.NewCatalog(&steadyReader{})
	row := clockRow(catalog, consistency.NewTarget(clock.Monotonic))
	require.Equal(t, "1", row[0])
	require.Equal(t, "CLOCK_MONOTONIC", row[1])
	require.Equal(t, "yes", row[2])
	require.NotEqual(t, "-", row[3])
}

func TestListRun(t *testing.T) {
	catalog := consistency.NewCatalog(clock.System{})
	out := &bytes.Buffer{}
	require.NoError(t, listRun(out, catalog, catalog.Targets(clock.Realtime, false)))
	require.Contains(t, out.String(), "CLOCK_MONOTONIC")
	require.Contains(t, out.String(), "CLOCK_TAI")
	require.Contains(t, strings.ToLower(out.String()), "max adj ppb")
}
