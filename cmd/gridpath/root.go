package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/loader"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathgrid"
)

var version = "0.1.0-dev"

// app carries what every subcommand needs once flags are resolved.
type app struct {
	v        *viper.Viper
	cfg      config
	log      *slog.Logger
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest paths on mutable 8-directional grids",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("env-file", ".env", "dotenv file loaded before reading GRIDPATH_* variables")
	pf.String("map", "", "maze file: .json array or an image (png, gif, jpeg, bmp, webp)")
	pf.Int("threshold", int(loader.DefaultThreshold), "red-channel value a pixel must exceed to be passable")
	pf.Bool("strict-repair", false, "rebuild all adjacency after a toggle opens a cell")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")

	for key, flag := range map[string]string{
		keyMap:          "map",
		keyThreshold:    "threshold",
		keyStrictRepair: "strict-repair",
		keyLogLevel:     "log-level",
		keyMetricsFile:  "metrics-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(
		newSearchCmd(a),
		newComponentsCmd(a),
		newPlayCmd(a),
	)

	return rootCmd
}

// init loads .env, the optional config file and the environment, then builds
// the logger and the metrics recorder.
func (a *app) init(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("gridpath: load %s: %w", envFile, err)
	}

	a.v.SetEnvPrefix("GRIDPATH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("gridpath: read config: %w", err)
		}
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	a.recorder = metrics.NewRecorder(prometheus.NewRegistry())

	return nil
}

// loadGrid reads the configured map and records the initial build.
func (a *app) loadGrid() (*pathgrid.Grid, error) {
	if a.cfg.Map == "" {
		return nil, errNoMap
	}
	began := time.Now()
	g, err := loader.Load(a.cfg.Map, loader.WithThreshold(a.cfg.Threshold))
	if err != nil {
		return nil, err
	}
	a.recorder.ObserveRebuild()
	a.log.Debug("map loaded",
		slog.String("path", a.cfg.Map),
		slog.Int("size", g.Size()),
		slog.Duration("took", time.Since(began)),
	)
	return g, nil
}

// flushMetrics writes the textfile when one is configured.
func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return err
	}
	a.log.Debug("metrics written", slog.String("path", a.cfg.MetricsFile))
	return nil
}
