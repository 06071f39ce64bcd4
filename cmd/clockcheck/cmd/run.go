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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebook/clockcheck/clock"
	"github.com/facebook/clockcheck/consistency"
	"github.com/facebook/clockcheck/phc"
	"github.com/facebook/clockcheck/report"
	"github.com/facebook/clockcheck/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v2"
)

// how often Prometheus gauges are refreshed from counters
const scrapeInterval = time.Second

var (
	runConfigFlag         string
	runDurationFlag       int64
	runClockFlag          string
	runFormatFlag         string
	runDevicesFlag        []string
	runIfacesFlag         []string
	runMonitoringPortFlag int
)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runConfigFlag, "config", "f", "", "path to the config")
	runCmd.Flags().Int64VarP(&runDurationFlag, "time", "t", 10, "number of seconds to test each clock, -1 to run forever")
	runCmd.Flags().StringVarP(&runClockFlag, "clock", "c", "", "test only this clock, id or name like CLOCK_MONOTONIC (default all clocks)")
	runCmd.Flags().StringVar(&runFormatFlag, "format", report.FormatTAP, fmt.Sprintf("output format, %q, %q or %q", report.FormatTAP, report.FormatJSON, report.FormatText))
	runCmd.Flags().StringSliceVarP(&runDevicesFlag, "device", "d", nil, "PHC device to test after the system clocks, can be repeated")
	runCmd.Flags().StringSliceVarP(&runIfacesFlag, "iface", "i", nil, "network interface whose PHC is tested after the system clocks, can be repeated")
	runCmd.Flags().IntVar(&runMonitoringPortFlag, "monitoringport", 0, "port to serve Prometheus metrics on, 0 to disable")
}

// prepareConfig merges config file and flags, flags win
func prepareConfig(cmd *cobra.Command, isTerminal bool) (*consistency.Config, error) {
	cfg := consistency.DefaultConfig()
	if runConfigFlag != "" {
		var err error
		if cfg, err = consistency.ReadConfig(runConfigFlag); err != nil {
			return nil, fmt.Errorf("reading config %q: %w", runConfigFlag, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.Duration = consistency.Duration(runDurationFlag)
	}
	if flags.Changed("clock") {
		id, err := clock.ParseID(runClockFlag)
		if err != nil {
			return nil, err
		}
		cfg.Clock = id
		cfg.Single = true
	}
	if flags.Changed("format") {
		cfg.Format = runFormatFlag
	} else if runConfigFlag == "" && isTerminal {
		cfg.Format = report.FormatText
	}
	if flags.Changed("device") {
		cfg.Devices = runDevicesFlag
	}
	if flags.Changed("iface") {
		cfg.Interfaces = runIfacesFlag
	}
	if flags.Changed("monitoringport") {
		cfg.MonitoringPort = runMonitoringPortFlag
	}
	return cfg, cfg.Validate()
}

// openDevices opens all PHC devices from config, caller must call returned cleanup
func openDevices(cfg *consistency.Config) ([]consistency.Target, func(), error) {
	devices := []*phc.Device{}
	cleanup := func() {
		for _, d := range devices {
			if err := d.Close(); err != nil {
				log.Warningf("closing %s: %v", d.Path(), err)
			}
		}
	}
	paths := append([]string{}, cfg.Devices...)
	for _, iface := range cfg.Interfaces {
		path, err := phc.IfaceToPHCDevice(iface)
		if err != nil {
			return nil, cleanup, err
		}
		log.Debugf("using %s for %s", path, iface)
		paths = append(paths, path)
	}
	targets := []consistency.Target{}
	for _, path := range paths {
		d, err := phc.Open(path)
		if err != nil {
			return nil, cleanup, err
		}
		devices = append(devices, d)
		targets = append(targets, consistency.Target{ID: d.ClockID(), Name: d.Path()})
	}
	return targets, cleanup, nil
}

// runChecks tests all clocks and returns exit code
func runChecks(ctx context.Context, cfg *consistency.Config, out io.Writer, reader clock.Reader) (int, error) {
	s := stats.New()
	runner := consistency.NewRunner(reader, cfg.Duration, s)
	targets := runner.Catalog.Targets(cfg.Clock, cfg.Single)
	phcTargets, cleanup, err := openDevices(cfg)
	defer cleanup()
	if err != nil {
		return report.ExitFail, err
	}
	targets = append(targets, phcTargets...)

	rep, err := report.New(cfg.Format, out, report.HostInfo())
	if err != nil {
		return report.ExitFail, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.MonitoringPort > 0 {
		exporter := stats.NewPrometheusExporter(s, cfg.MonitoringPort, scrapeInterval)
		eg.Go(func() error {
			return exporter.Start(ctx)
		})
	}
	eg.Go(func() error {
		// exporter goes away once we are done
		defer cancel()
		verdict, err := runner.Run(ctx, targets, rep)
		log.Debugf("run finished: %s", verdict)
		return err
	})
	err = eg.Wait()
	code := rep.Finish()
	if err != nil {
		return report.ExitFail, err
	}
	return code, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Test clocks for inconsistencies",
	Long:  "Read each clock in tight loops and fail as soon as any reading is earlier than the one before it.",
	Run: func(cmd *cobra.Command, _ []string) {
		ConfigureVerbosity()
		cfg, err := prepareConfig(cmd, term.IsTerminal(int(os.Stdout.Fd())))
		if err != nil {
			log.Fatal(err)
		}
		if out, err := yaml.Marshal(cfg); err == nil {
			log.Debugf("effective config:\n%s", out)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		code, err := runChecks(ctx, cfg, os.Stdout, clock.System{})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warning("interrupted")
			} else {
				log.Error(err)
			}
		}
		stop()
		os.Exit(code)
	},
}
