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
	"fmt"
	"os"

	"github.com/facebook/clockcheck/clock"
	yaml "gopkg.in/yaml.v2"
)

// Config specifies clockcheck run options
type Config struct {
	// Clock is the first clock to test
	Clock clock.ID `yaml:"clock"`
	// Single restricts the run to Clock only
	Single bool `yaml:"single"`
	// Duration is per clock, in seconds. -1 means forever
	Duration Duration `yaml:"duration"`
	// Devices are PHC devices tested after the static clocks
	Devices []string `yaml:"devices"`
	// Interfaces are network cards, their PHC devices are tested after Devices
	Interfaces     []string `yaml:"interfaces"`
	Format         string   `yaml:"format"`
	MonitoringPort int      `yaml:"monitoringport"`
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		Clock:    clock.Realtime,
		Duration: 10,
		Format:   "tap",
	}
}

// Validate config is sane
func (c *Config) Validate() error {
	if c.Clock < 0 || c.Clock > clock.MaxID {
		return fmt.Errorf("clock must be within [0, %d]", clock.MaxID)
	}
	if c.Duration < Forever {
		return fmt.Errorf("duration must be 0 or positive, or %d to run forever", Forever)
	}
	if c.MonitoringPort < 0 {
		return fmt.Errorf("monitoringport must be 0 or positive")
	}
	if c.Format == "" {
		return fmt.Errorf("format must be specified")
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, &c)
	if err != nil {
		return nil, err
	}

	return c, nil
}
