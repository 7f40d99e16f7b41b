package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/freerun/freerun/settings"
	"github.com/freerun/freerun/sim"
	"github.com/freerun/freerun/worker"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

// The following program plays every demo scenario on the demo course and reports the movement states each
// one went through.
func main() {
	path := "freerun.toml"
	if len(os.Args) > 2 {
		fmt.Println("Usage: ./freerun [settings_file]")
		return
	} else if len(os.Args) == 2 {
		path = os.Args[1]
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}
	os.Exit(run(path, log))
}

// run plays the scenarios with the settings at path and returns the process exit code. Deferred flushes all
// happen before it returns.
func run(path string, log *logrus.Logger) int {
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Errorf("unable to start sentry: %v", err)
			return 1
		}
		defer sentry.Flush(time.Second * 5)
		defer sentry.Recover()
	}

	s, err := readSettings(path)
	if err != nil {
		log.Error(err)
		return 1
	}
	if lvl, err := logrus.ParseLevel(s.Log.Level); err == nil {
		log.Level = lvl
	} else {
		log.Warnf("unknown log level %q, using info", s.Log.Level)
	}

	if os.Getenv("FREERUN_STATSVIEW") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	opts := sim.DefaultOptions()
	opts.Locomotion, opts.Sim, opts.Body, opts.Log = s.Locomotion, s.Simulation, s.Body, log

	scenarios := sim.Scenarios()
	results := make([]sim.Result, len(scenarios))
	errs := make([]error, len(scenarios))
	tasks := make([]func(), len(scenarios))
	for i, sc := range scenarios {
		tasks[i] = func() {
			results[i], errs[i] = sc.Run(opts)
		}
	}
	worker.Wait(tasks...)

	failed := 0
	for i, res := range results {
		entry := log.WithFields(logrus.Fields{"scenario": scenarios[i].Name, "states": res.States, "final": res.Final.State})
		if errs[i] != nil {
			failed++
			entry.Errorf("scenario failed: %v", errs[i])
			continue
		}
		entry.Info("scenario passed")
	}
	if failed > 0 {
		log.Errorf("%d/%d scenarios failed", failed, len(scenarios))
		return 1
	}
	return 0
}

// readSettings loads the settings file at path, writing the defaults there first if it does not exist yet.
func readSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}
