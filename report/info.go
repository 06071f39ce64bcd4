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

package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
)

// clockSourcePath has the clocksource the kernel currently uses for timekeeping
const clockSourcePath = "/sys/devices/system/clocksource/clocksource0/current_clocksource"

// HostInfo returns lines describing the host timekeeping setup
func HostInfo() []string {
	info := []string{}
	if kernel, err := host.KernelVersion(); err == nil {
		info = append(info, fmt.Sprintf("kernel: %s", kernel))
	} else {
		log.Debugf("getting kernel version: %v", err)
	}
	if src, err := os.ReadFile(clockSourcePath); err == nil {
		info = append(info, fmt.Sprintf("clocksource: %s", strings.TrimSpace(string(src))))
	} else {
		log.Debugf("reading clocksource: %v", err)
	}
	return info
}
