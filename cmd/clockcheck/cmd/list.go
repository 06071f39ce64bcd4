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
	"fmt"
	"io"
	"os"

	"github.com/facebook/clockcheck/clock"
	"github.com/facebook/clockcheck/consistency"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listDevicesFlag []string
	listIfacesFlag  []string
)

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().StringSliceVarP(&listDevicesFlag, "device", "d", nil, "PHC device to list, can be repeated")
	listCmd.Flags().StringSliceVarP(&listIfacesFlag, "iface", "i", nil, "network interface whose PHC is listed, can be repeated")
}

// clockRow describes a clock, unknown values are shown as "-"
func clockRow(catalog *consistency.Catalog, t consistency.Target) []string {
	row := []string{fmt.Sprintf("%d", t.ID), t.Name, "no", "-", "-", "-", "-"}
	// fd based ids only make sense inside this process
	if t.ID.Dynamic() {
		row[0] = "dynamic"
	}
	if !catalog.Supported(t) {
		return row
	}
	row[2] = "yes"
	if res, err := clock.Resolution(t.ID); err == nil {
		row[3] = res.String()
	} else {
		log.Debugf("clock_getres on %s: %v", t.Name, err)
	}
	// clock_adjtime works on CLOCK_REALTIME and PHCs only
	if freq, state, err := clock.FrequencyPPB(t.ID); err == nil {
		row[4] = fmt.Sprintf("%.3f", freq)
		row[5] = clock.StateString(state)
	} else {
		log.Debugf("clock_adjtime on %s: %v", t.Name, err)
	}
	if maxFreq, _, err := clock.MaxFreqPPB(t.ID); err == nil {
		row[6] = fmt.Sprintf("%.0f", maxFreq)
	}
	return row
}

func listRun(w io.Writer, catalog *consistency.Catalog, targets []consistency.Target) error {
	table := tablewriter.NewWriter(w)
	table.Header("id", "clock", "supported", "resolution", "freq ppb", "state", "max adj ppb")
	for _, t := range targets {
		if err := table.Append(clockRow(catalog, t)); err != nil {
			return err
		}
	}
	return table.Render()
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List clocks and whether this system supports them",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		catalog := consistency.NewCatalog(clock.System{})
		cfg := consistency.DefaultConfig()
		cfg.Devices = listDevicesFlag
		cfg.Interfaces = listIfacesFlag
		phcTargets, cleanup, err := openDevices(cfg)
		defer cleanup()
		if err != nil {
			log.Fatal(err)
		}
		targets := append(catalog.Targets(clock.Realtime, false), phcTargets...)
		if err := listRun(os.Stdout, catalog, targets); err != nil {
			log.Fatal(err)
		}
	},
}
