package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathgrid"
)

var errCheckFailed = errors.New("gridpath: A* cost disagrees with Dijkstra")

func newSearchCmd(a *app) *cobra.Command {
	var (
		from, to string
		check    bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the shortest path between two cells",
		Long: `Search runs A* from --from to --to on the loaded map and prints the
map with the route drawn on it, followed by the path cost.

With --check the result is compared against an exhaustive Dijkstra run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseCoord(from)
			if err != nil {
				return err
			}
			goal, err := parseCoord(to)
			if err != nil {
				return err
			}
			g, err := a.loadGrid()
			if err != nil {
				return err
			}

			began := time.Now()
			res, err := g.Search(start, goal)
			outcome := metrics.Outcome(err, res)
			a.recorder.ObserveSearch(outcome, time.Since(began), len(res.Path), res.Expanded)
			a.log.Info("search",
				slog.String("from", start.String()),
				slog.String("to", goal.String()),
				slog.String("outcome", outcome),
				slog.Int("expanded", res.Expanded),
			)

			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, pathgrid.ErrNoPath):
				fmt.Fprintf(out, "no path from %v to %v\n", start, goal)
			case err != nil:
				return err
			default:
				if !quiet {
					renderPath(out, g, start, res.Path)
				}
				fmt.Fprintf(out, "steps: %d\ncost: %.4f\n", len(res.Path), res.Cost)
			}

			if check {
				if err := checkAgainstDijkstra(a.log, g, start, goal, res, err); err != nil {
					return err
				}
				fmt.Fprintln(out, "check: ok")
			}

			return a.flushMetrics()
		},
	}

	cmd.Flags().StringVar(&from, "from", "0,0", "start cell as ROW,COL")
	cmd.Flags().StringVar(&to, "to", "", "goal cell as ROW,COL")
	cmd.Flags().BoolVar(&check, "check", false, "verify the cost against Dijkstra")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not draw the map")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// checkAgainstDijkstra confirms that A* found the optimal cost, or that both
// agree the goal is unreachable.
func checkAgainstDijkstra(log *slog.Logger, g *pathgrid.Grid, start, goal pathgrid.Coord, res pathgrid.Result, searchErr error) error {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(start))
	if err != nil {
		return err
	}
	want := dist[goal]
	got := res.Cost
	if searchErr != nil {
		got = math.Inf(1)
	}
	if math.IsInf(want, 1) && math.IsInf(got, 1) {
		return nil
	}
	if math.Abs(want-got) > 1e-9 {
		log.Error("check failed", slog.Float64("astar", got), slog.Float64("dijkstra", want))
		return fmt.Errorf("%w: %.6f vs %.6f", errCheckFailed, got, want)
	}
	return nil
}

// renderPath draws g with 'S' at start, '*' along the path and 'G' at the
// goal.
func renderPath(w io.Writer, g *pathgrid.Grid, start pathgrid.Coord, path []pathgrid.Coord) {
	marks := make(map[pathgrid.Coord]byte, len(path)+1)
	for _, at := range path {
		marks[at] = '*'
	}
	if len(path) > 0 {
		marks[path[len(path)-1]] = 'G'
	}
	marks[start] = 'S'

	n := g.Size()
	line := make([]byte, n+1)
	line[n] = '\n'
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := pathgrid.Coord{Row: r, Col: c}
			cell, _ := g.Cell(at)
			switch m, ok := marks[at]; {
			case ok:
				line[c] = m
			case !cell.Passable():
				line[c] = '#'
			default:
				line[c] = '.'
			}
		}
		_, _ = w.Write(line)
	}
}
