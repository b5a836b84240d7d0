// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbascores/cmd/nbascores/cli"
	"github.com/bureau-foundation/nbascores/lib/config"
)

// dateLayout is the feed's yyyymmdd date format.
const dateLayout = "20060102"

type options struct {
	date       string
	tickRateMS int
	enhanced   bool
	gameID     string
	refresh    time.Duration
	feedDir    string
	configPath string
	redisURL   string
	logOutput  string
	color      string

	showVersion bool
	showHelp    bool
}

// parseOptions parses args. now supplies the default date, formatted in
// now's location.
func parseOptions(args []string, now time.Time) (*options, *pflag.FlagSet, error) {
	defaults := config.Default()
	opts := &options{}

	flagSet := pflag.NewFlagSet("nbascores", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.date, "date", "d", now.Format(dateLayout), "date to show, as yyyymmdd")
	flagSet.IntVarP(&opts.tickRateMS, "tick-rate", "t", int(defaults.UI.TickRate/time.Millisecond), "UI tick interval in milliseconds")
	flagSet.BoolVarP(&opts.enhanced, "enhanced-graphics", "e", defaults.UI.EnhancedGraphics, "use nine-level bar glyphs in the score-flow chart")
	flagSet.StringVar(&opts.gameID, "game", "", "game id to open (default: first game of the day)")
	flagSet.DurationVar(&opts.refresh, "refresh", defaults.UI.Refresh, "reload the open game this often; 0 disables")
	flagSet.StringVar(&opts.feedDir, "feed-dir", "", "read feeds from this directory instead of the network")
	flagSet.StringVar(&opts.configPath, "config", "", "YAML config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&opts.redisURL, "redis-url", "", "share cached feeds through this Redis instance")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.StringVar(&opts.color, "color", defaults.UI.Color, "color mode: auto, always, never")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information")
	flagSet.BoolVarP(&opts.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			opts.showHelp = true
			return opts, flagSet, nil
		}
		return nil, flagSet, cli.Validation("%w", err).WithHint("Run 'nbascores --help' for usage.")
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, cli.Validation("unexpected argument: %s", rest[0])
	}
	if opts.showHelp || opts.showVersion {
		return opts, flagSet, nil
	}

	if _, err := time.Parse(dateLayout, opts.date); err != nil {
		return nil, flagSet, cli.Validation("invalid date %q", opts.date).
			WithHint("Dates are yyyymmdd, e.g. -d 20210412.")
	}
	if opts.tickRateMS <= 0 {
		return nil, flagSet, cli.Validation("tick rate must be positive, got %d", opts.tickRateMS)
	}
	return opts, flagSet, nil
}

// loadConfig reads the file named by path, or by the environment when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags given on the command line.
// Flags left at their defaults do not override the config file.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, opts *options) {
	if flagSet.Changed("tick-rate") {
		cfg.UI.TickRate = time.Duration(opts.tickRateMS) * time.Millisecond
	}
	if flagSet.Changed("enhanced-graphics") {
		cfg.UI.EnhancedGraphics = opts.enhanced
	}
	if flagSet.Changed("refresh") {
		cfg.UI.Refresh = opts.refresh
	}
	if flagSet.Changed("color") {
		cfg.UI.Color = opts.color
	}
	if opts.feedDir != "" {
		cfg.Feed.Dir = opts.feedDir
	}
	if opts.redisURL != "" {
		cfg.Cache.RedisURL = opts.redisURL
	}
	if opts.logOutput != "" {
		cfg.Log.Output = opts.logOutput
	}
}
