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

/*
Package phc opens PTP hardware clocks so they can be read as dynamic posix clocks.

A PHC is exposed as /dev/ptpN. Once the device is open, the file descriptor encodes into
a clock id accepted by clock_gettime(2). See FD_TO_CLOCKID in linux/posix-timers.h.
*/
package phc

import (
	"fmt"
	"os"

	"github.com/facebook/clockcheck/clock"
	"golang.org/x/sys/unix"
)

// clockfd is CLOCKFD from linux/posix-timers.h
const clockfd = 3

// FDToClockID converts file descriptor number to a dynamic clock id
func FDToClockID(fd uintptr) clock.ID {
	return clock.ID((int(^fd) << 3) | clockfd)
}

// Device is an open PHC device
type Device struct {
	f *os.File
}

// Open opens PHC device, i.e. /dev/ptp0
func Open(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PHC device %q: %w", path, err)
	}
	return &Device{f: f}, nil
}

// ClockID returns clock id valid while the device is open
func (d *Device) ClockID() clock.ID {
	return FDToClockID(d.f.Fd())
}

// Path returns device path
func (d *Device) Path() string {
	return d.f.Name()
}

// Close closes the device, clock id becomes invalid
func (d *Device) Close() error {
	return d.f.Close()
}

// IfaceToPHCDevice returns path to PHC device associated with given network card iface
func IfaceToPHCDevice(iface string) (string, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return "", fmt.Errorf("failed to create socket for ioctl: %w", err)
	}
	defer unix.Close(fd)
	info, err := unix.IoctlGetEthtoolTsInfo(fd, iface)
	if err != nil {
		return "", fmt.Errorf("getting interface %s info: %w", iface, err)
	}
	if info.Phc_index < 0 {
		return "", fmt.Errorf("%s: no PHC support", iface)
	}
	return fmt.Sprintf("/dev/ptp%d", info.Phc_index), nil
}
