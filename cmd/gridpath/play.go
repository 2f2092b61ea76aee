package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/chase"
	"github.com/katalvlaran/gridpath/pathgrid"
)

// newScreen opens the terminal; tests swap in a simulation screen.
var newScreen = tcell.NewScreen

func newPlayCmd(a *app) *cobra.Command {
	var (
		player, enemy string
		showSearch    bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Hide from the enemy in the terminal",
		Long: `Play opens the map in the terminal. Arrow keys (or h, j, k, l) move and
turn the player, space builds or removes the wall in front of it, r rebuilds
all adjacency, q or Esc quits. After every action the enemy takes one step
along the shortest path toward the player.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}

			first, last, ok := passableExtremes(g)
			if !ok {
				return fmt.Errorf("gridpath: %s has no passable cell", a.cfg.Map)
			}
			p, e := first, last
			if player != "" {
				if p, err = parseCoord(player); err != nil {
					return err
				}
			}
			if enemy != "" {
				if e, err = parseCoord(enemy); err != nil {
					return err
				}
			}

			opts := []chase.Option{chase.WithLogger(a.log), chase.WithRecorder(a.recorder)}
			if a.cfg.StrictRepair {
				opts = append(opts, chase.WithStrictRepair())
			}
			if showSearch {
				opts = append(opts, chase.WithVisitMarking())
			}
			session, err := chase.NewSession(g, p, e, opts...)
			if err != nil {
				return err
			}

			screen, err := newScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			ui := newGameUI(screen, session, a)
			ui.run()

			a.log.Info("round over",
				slog.Int("turns", session.Turn()),
				slog.Bool("caught", session.Caught()),
			)
			return a.flushMetrics()
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "player start as ROW,COL (default: first open cell)")
	cmd.Flags().StringVar(&enemy, "enemy", "", "enemy start as ROW,COL (default: last open cell)")
	cmd.Flags().BoolVar(&showSearch, "show-search", false, "shade the cells the enemy's last search visited")

	return cmd
}

// passableExtremes returns the first and last passable cells in row-major
// order.
func passableExtremes(g *pathgrid.Grid) (first, last pathgrid.Coord, ok bool) {
	n := g.Size()
	for i := 0; i < n*n; i++ {
		at := pathgrid.Coord{Row: i / n, Col: i % n}
		if cell, _ := g.Cell(at); cell.Passable() {
			if !ok {
				first = at
			}
			last, ok = at, true
		}
	}
	return first, last, ok
}
