package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jitlab/warmsim/pkg/common"
	"github.com/jitlab/warmsim/pkg/config"
	"github.com/jitlab/warmsim/pkg/driver"
	"github.com/jitlab/warmsim/pkg/eventlog"
	"github.com/jitlab/warmsim/pkg/metric"
	"github.com/jitlab/warmsim/pkg/plotter"
	"github.com/jitlab/warmsim/pkg/registry"
	"github.com/jitlab/warmsim/pkg/sampler"
)

var (
	configPath  = flag.String("config", "cmd/config.json", "Path to the warmsim configuration file")
	verbosity   = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	variant     = flag.String("variant", "", "Override the timer variant - simulated or measured")
	rounds      = flag.Int("rounds", 0, "Override the number of rounds in the timed run")
	seed        = flag.Int64("seed", 0, "Override the random seed")
	sampleIndex = flag.Int("sample", -1, "Trigger a single manual sample for the given function index instead of a timed run")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.ReadConfigurationFile(*configPath)

	if *variant != "" {
		cfg.Variant = *variant
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var timer sampler.TimerSource
	switch cfg.Variant {
	case "simulated":
		timer = sampler.NewSimulatedTimer(cfg.Seed)
	case "measured":
		timer = sampler.NewMeasuredTimer()
	default:
		log.Fatalf("Unsupported timer variant: %q", cfg.Variant)
	}

	functionRegistry := registry.New(cfg.HistoryLength)
	exporter := metric.NewExporter()
	events := eventlog.New(common.EventLogCapacity)

	experimentDriver := driver.NewDriver(&driver.DriverConfiguration{
		Rounds:     cfg.Rounds,
		RoundDelay: time.Duration(cfg.RoundDelayMilli) * time.Millisecond,
		Seed:       cfg.Seed,

		Timer:    timer,
		Registry: functionRegistry,
		Exporter: exporter,
		EventLog: events,
	})

	log.Infof("Monitoring the following %d functions:", functionRegistry.Count())
	for _, record := range functionRegistry.Records() {
		log.Infof("\t%s", record.Name)
	}

	if *sampleIndex >= 0 {
		record, err := experimentDriver.SampleOne(*sampleIndex)
		if err != nil {
			log.Fatal(err)
		}

		log.Infof("Sampled %s: %.2f ms (call %d, tier %s, level %.1f)",
			record.FunctionName, record.Duration, record.CallCount, record.Tier, record.OptLevel)

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := experimentDriver.RunTimed(ctx); err != nil {
		log.Errorf("Timed run did not complete: %v", err)
	}

	reportResults(cfg, functionRegistry, exporter, events)
}

func reportResults(cfg config.Configuration, functionRegistry *registry.Registry,
	exporter *metric.Exporter, events *eventlog.Log) {

	records := exporter.GetSampleRecords()

	for _, summary := range metric.Summarize(records) {
		log.Infof("%s: %d samples (%d failed), mean %.2f ms, stddev %.2f ms, p50 %.2f ms, p99 %.2f ms, best %.2f ms, tier %s",
			summary.FunctionName, summary.SampleCount, summary.FailedCount,
			summary.Mean, summary.StdDev, summary.P50, summary.P99, summary.Best, summary.Tier)
	}

	for _, record := range functionRegistry.Records() {
		window := record.History.Snapshot()
		shown := common.MinOf(len(window), 10)
		log.Debugf("%s recent durations: %v", record.Name, window[len(window)-shown:])
	}

	for _, line := range events.Lines() {
		log.Tracef("event: %s", line)
	}

	if dir := filepath.Dir(cfg.OutputPathPrefix); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}

	csvPath := cfg.OutputPathPrefix + "samples.csv"
	if err := exporter.WriteToFile(csvPath); err != nil {
		log.Errorf("Failed to write %s: %v", csvPath, err)
	} else {
		log.Infof("Wrote %d sample records to %s", len(records), csvPath)
	}

	if cfg.EnablePlotting {
		figPath := cfg.OutputPathPrefix + "timeline.png"
		if err := plotter.WriteTimeline(figPath, records); err != nil {
			log.Errorf("Failed to plot %s: %v", figPath, err)
		} else {
			log.Infof("Wrote duration timeline to %s", figPath)
		}
	}
}
