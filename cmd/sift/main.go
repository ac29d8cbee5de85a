// Sift is a SOC alert triage tool: it scores a batch of security alerts,
// ranks them by risk, and emits a text summary plus a standalone HTML report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/linnemanlabs/go-core/cfg"
	"github.com/linnemanlabs/go-core/log"
	v "github.com/linnemanlabs/go-core/version"

	sc "github.com/linnemanlabs/sift/internal/cfg"
	"github.com/linnemanlabs/sift/internal/load"
	"github.com/linnemanlabs/sift/internal/report"
	"github.com/linnemanlabs/sift/internal/score"
	"github.com/linnemanlabs/sift/internal/triage"
)

const appName = "sift"
const component = "cli"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Set app name and component
	v.AppName = appName
	v.Component = component

	// Get build/version info
	vi := v.Get()

	// each package registers its own flags and options struct
	var (
		appCfg sc.Config
		logCfg log.Config
	)

	appCfg.RegisterFlags(flag.CommandLine)
	logCfg.RegisterFlags(flag.CommandLine)
	var showVersion bool
	flag.BoolVar(&showVersion, "V", false, "Print version+build information and exit")

	// parse flags to get config values from cmdline, we check env vars next which do not override cmdline flags
	flag.Parse()
	if showVersion {
		fmt.Printf(
			"%s (%s) %s (commit=%s, commit_date=%s, build_id=%s, build_date=%s, go=%s, dirty=%v)\n",
			vi.AppName, vi.Component, vi.Version, vi.Commit, vi.CommitDate, vi.BuildId, vi.BuildDate, vi.GoVersion,
			vi.VCSDirty != nil && *vi.VCSDirty,
		)
		return nil
	}

	// Fill in config values from environment variables with prefix SIFT_,
	// these do not override cmdline flags
	cfg.FillFromEnv(flag.CommandLine, "SIFT_", func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})

	if err := errors.Join(
		appCfg.Validate(),
		logCfg.Validate(),
	); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// initialize logger early
	lg, err := log.New(logCfg.ToOptions(v.AppName))
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	L := lg.With("component", vi.Component)
	ctx = log.WithContext(ctx, L)

	// Build the scoring engine first: a bad weight table fails fast,
	// before any file is touched.
	engine, err := score.NewEngine(appCfg.ScoringConfig())
	if err != nil {
		return err
	}

	records, err := load.File(appCfg.InputPath)
	if err != nil {
		return err
	}
	L.Info(ctx, "batch loaded", "path", appCfg.InputPath, "records", len(records))

	pipeline := triage.NewPipeline(engine, L, nil)
	rep := pipeline.Run(ctx, records)
	summary := triage.Summarize(rep.Alerts, engine.RiskThreshold())

	if err := report.WriteText(os.Stdout, rep, summary, appCfg.TopN); err != nil {
		return fmt.Errorf("write text summary: %w", err)
	}

	// the HTML report is written only after the full batch scored
	if err := report.WriteHTMLFile(appCfg.HTMLOut, rep, summary); err != nil {
		return err
	}
	L.Info(ctx, "html report written", "path", appCfg.HTMLOut, "alerts", len(rep.Alerts), "skipped", len(rep.Skipped))

	return nil
}
