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
Package clock contains thin wrappers around the POSIX clock syscalls.

It describes the clock ids Linux exposes (CLOCK_REALTIME, CLOCK_MONOTONIC and friends), reads
them through clock_gettime(2) and exposes a few read-only bits of clock_getres(2) and
clock_adjtime(2) state for diagnostics.

Readings are returned as Timestamp values whose seconds are kept unsigned, so comparisons stay
correct across a signed epoch rollover.
*/
package clock
