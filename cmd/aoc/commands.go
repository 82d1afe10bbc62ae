package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joellidin/aoc/cycle"
	"github.com/joellidin/aoc/search"
)

var (
	turnCost int
	allPaths bool
	cycles   int64
	from, to string
	directed bool
)

var pathCmd = &cobra.Command{
	Use:   "path FILE",
	Short: "Cheapest route from S to E through a walled maze",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		all := allPaths || cfg.Search.AllPaths
		res, err := solveMaze(string(text), turnCost, all, searchOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Cost)
		if all {
			fmt.Fprintln(cmd.OutOrStdout(), res.Tiles)
		}
		return nil
	},
}

var spinCmd = &cobra.Command{
	Use:   "spin FILE",
	Short: "North-beam load after spinning a platform of rolling rocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		n := cfg.Spin.Cycles
		if cmd.Flags().Changed("cycles") {
			n = cycles
		}
		load, err := spinLoad(string(text), n, cycle.WithContext(cmd.Context()), cycle.WithLogger(logger))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), load)
		return nil
	},
}

var routeCmd = &cobra.Command{
	Use:   "route FILE",
	Short: "Cheapest route through an edge list of \"from to [weight]\" lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		cost, path, err := route(string(text), from, to, directed, searchOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cost, path)
		return nil
	},
}

func init() {
	pathCmd.Flags().IntVar(&turnCost, "turn-cost", 0, "cost of a 90° turn; 0 ignores facing")
	pathCmd.Flags().BoolVar(&allPaths, "all-paths", false, "also print the number of tiles on any optimal path")
	spinCmd.Flags().Int64Var(&cycles, "cycles", 1_000_000_000, "spin cycles to simulate")
	routeCmd.Flags().StringVar(&from, "from", "", "start vertex")
	routeCmd.Flags().StringVar(&to, "to", "", "goal vertex")
	routeCmd.Flags().BoolVar(&directed, "directed", false, "treat edges as one-way")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

func searchOptions() []search.Option {
	return []search.Option{
		search.WithMaxStates(cfg.Search.MaxStates),
		search.WithLogger(logger),
	}
}
