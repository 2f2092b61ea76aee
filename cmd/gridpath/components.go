package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the connected regions of the map",
		Long: `Components prints every connected region of passable cells. With both
--from and --to it also prints the fewest walls to remove so that the two
cells are connected.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}

			comps := g.Components()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "regions: %d\n", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(out, "  #%d: %d cells from %v\n", i+1, len(comp), comp[0])
			}

			if from != "" && to != "" {
				start, err := parseCoord(from)
				if err != nil {
					return err
				}
				end, err := parseCoord(to)
				if err != nil {
					return err
				}
				walls, err := g.Bridge(start, end)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "bridge %v to %v: open %d %v\n", start, end, len(walls), walls)
			}

			return a.flushMetrics()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "bridge start as ROW,COL")
	cmd.Flags().StringVar(&to, "to", "", "bridge end as ROW,COL")

	return cmd
}
