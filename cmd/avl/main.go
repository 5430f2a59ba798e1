// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "avl [command] (flags)",
	Short: "avl tree scripting/benchmarking tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		scriptCmd,
		benchCmd,
	)

	for _, cmd := range []*cobra.Command{scriptCmd, benchCmd} {
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "log every rebalancing rotation")
	}

	scriptCmd.Flags().BoolVar(
		&scriptConfig.numeric, "numeric", false, "parse keys as 64-bit integers instead of strings")

	benchCmd.Flags().IntVar(
		&benchConfig.keys, "keys", 100000, "size of the key space")
	benchCmd.Flags().IntVarP(
		&benchConfig.ops, "ops", "n", 1000000, "number of operations per tree")
	benchCmd.Flags().IntVarP(
		&benchConfig.trees, "trees", "c", 1, "number of trees, each driven by its own goroutine")
	benchCmd.Flags().IntVar(
		&benchConfig.readPercent, "read-percent", 50,
		"Percent (0-100) of operations that are lookups")
	benchCmd.Flags().IntVar(
		&benchConfig.removePercent, "remove-percent", 20,
		"Percent (0-100) of operations that are removes")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed")
	benchCmd.Flags().BoolVar(
		&benchConfig.hashed, "hashed", false,
		"scramble keys with xxhash so that the key order is unrelated to the generation order")
	benchCmd.Flags().Float64Var(
		&benchConfig.maxOpsPerSec, "max-ops-per-sec", 0,
		"limit the aggregate operation rate (0 means unlimited)")
	benchCmd.Flags().IntVar(
		&benchConfig.plotPoints, "plot-points", 60, "number of height samples to plot")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
