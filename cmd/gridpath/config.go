package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// Configuration keys shared by flags, config file and environment.
const (
	keyMap          = "map"
	keyThreshold    = "threshold"
	keyStrictRepair = "strict_repair"
	keyLogLevel     = "log_level"
	keyMetricsFile  = "metrics_file"
)

var (
	errNoMap    = errors.New("gridpath: no map given (use --map or GRIDPATH_MAP)")
	errBadCoord = errors.New("gridpath: coordinate must look like ROW,COL")
)

// config is the resolved configuration for one command invocation.
type config struct {
	Map          string
	Threshold    uint8
	StrictRepair bool
	LogLevel     slog.Level
	MetricsFile  string
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Map:          v.GetString(keyMap),
		StrictRepair: v.GetBool(keyStrictRepair),
		MetricsFile:  v.GetString(keyMetricsFile),
	}

	threshold := v.GetInt(keyThreshold)
	if threshold < 0 || threshold > 255 {
		return config{}, fmt.Errorf("gridpath: threshold %d outside 0..255", threshold)
	}
	cfg.Threshold = uint8(threshold)

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, fmt.Errorf("gridpath: log level: %w", err)
	}

	return cfg, nil
}

// parseCoord reads "ROW,COL", allowing spaces around either number.
func parseCoord(s string) (pathgrid.Coord, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return pathgrid.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return pathgrid.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return pathgrid.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return pathgrid.Coord{Row: r, Col: c}, nil
}
