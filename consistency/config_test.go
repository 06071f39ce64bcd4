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
	"os"
	"testing"

	"github.com/facebook/clockcheck/clock"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig("/does/not/exist")
	require.Error(t, err)
}

func TestReadConfigDefaults(t *testing.T) {
	f, err := os.CreateTemp("", "clockcheck")
	require.NoError(t, err)
	defer os.Remove(f.Name()) // clean up
	cfg, err := ReadConfig(f.Name())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestReadConfig(t *testing.T) {
	f, err := os.CreateTemp("", "clockcheck")
	require.NoError(t, err)
	defer os.Remove(f.Name()) // clean up
	_, err = f.Write([]byte(`clock: monotonic_raw
single: true
duration: -1
devices:
  - /dev/ptp0
  - /dev/ptp2
interfaces:
  - eth0
format: json
monitoringport: 4270
`))
	require.NoError(t, err)
	cfg, err := ReadConfig(f.Name())
	require.NoError(t, err)
	want := &Config{
		Clock:          clock.MonotonicRaw,
		Single:         true,
		Duration:       Forever,
		Devices:        []string{"/dev/ptp0", "/dev/ptp2"},
		Interfaces:     []string{"eth0"},
		Format:         "json",
		MonitoringPort: 4270,
	}
	require.Equal(t, want, cfg)
	require.NoError(t, cfg.Validate())
}

func TestReadConfigBadClock(t *testing.T) {
	f, err := os.CreateTemp("", "clockcheck")
	require.NoError(t, err)
	defer os.Remove(f.Name()) // clean up
	_, err = f.Write([]byte("clock: CLOCK_SUNDIAL\n"))
	require.NoError(t, err)
	_, err = ReadConfig(f.Name())
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	c.Duration = -2
	require.EqualError(t, c.Validate(), "duration must be 0 or positive, or -1 to run forever")

	c = DefaultConfig()
	c.Clock = clock.MaxID + 1
	require.EqualError(t, c.Validate(), "clock must be within [0, 11]")

	c = DefaultConfig()
	c.MonitoringPort = -1
	require.EqualError(t, c.Validate(), "monitoringport must be 0 or positive")

	c = DefaultConfig()
	c.Format = ""
	require.EqualError(t, c.Validate(), "format must be specified")
}

func TestConfigDumpReadsBack(t *testing.T) {
	c := DefaultConfig()
	c.Clock = clock.BoottimeAlarm
	c.Devices = []string{"/dev/ptp1"}
	c.Interfaces = []string{"eth1"}
	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	require.Contains(t, string(out), "clock: CLOCK_BOOTTIME_ALARM\n")

	f, err := os.CreateTemp("", "clockcheck")
	require.NoError(t, err)
	defer os.Remove(f.Name()) // clean up
	_, err = f.Write(out)
	require.NoError(t, err)
	got, err := ReadConfig(f.Name())
	require.NoError(t, err)
	require.Equal(t, c, got)
}
