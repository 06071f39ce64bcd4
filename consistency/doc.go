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
Package consistency checks that clocks never go backwards.

Each clock is sampled in batches of BatchSize consecutive clock_gettime(2) calls made in a
tight loop. Every adjacent pair of a batch must be in order. Sampling continues until the
configured number of seconds has passed on the clock under test, or forever.

The first clock that goes backwards stops the whole run.
*/
package consistency
