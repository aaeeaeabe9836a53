// Copyright 2024 The fixedstack Authors
// This file is part of fixedstack.
//
// fixedstack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fixedstack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with fixedstack. If not, see <http://www.gnu.org/licenses/>.

// stackbench measures the cost of the checked stack contract against the
// unchecked one: each trial fills a stack to a configured depth with random
// values and drains it again, and the elapsed times are aggregated across
// trials per variant.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hotloop/fixedstack/internal/flags"
)

const benchCategory = "BENCHMARK"

var (
	CapacityFlag = &cli.IntFlag{
		Name:     "capacity",
		Usage:    "Stack capacity in elements",
		Value:    1024,
		Category: benchCategory,
	}
	PushesFlag = &cli.IntFlag{
		Name:     "pushes",
		Usage:    "Values pushed (and popped) per trial, at most the capacity (default: capacity)",
		Category: benchCategory,
	}
	TrialsFlag = &cli.IntFlag{
		Name:     "trials",
		Usage:    "Number of timed trials per variant",
		Value:    50,
		Category: benchCategory,
	}
	VariantFlag = &cli.StringFlag{
		Name:     "variant",
		Usage:    `Contract to measure ("checked", "unchecked" or "both")`,
		Value:    "both",
		Category: benchCategory,
	}
	SeedFlag = &cli.Int64Flag{
		Name:     "seed",
		Usage:    "Seed for the random input values (0 = derive from current time)",
		Category: benchCategory,
	}
	JSONFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Emit the results as JSON instead of a table",
	}
)

var app = flags.NewApp("fixed-capacity stack micro-benchmark")

func init() {
	app.Name = "stackbench"
	app.Flags = flags.Merge(
		[]cli.Flag{CapacityFlag, PushesFlag, TrialsFlag, VariantFlag, SeedFlag},
		[]cli.Flag{JSONFlag},
	)
	app.Action = run
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := configFromCLI(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	variants, err := selectVariants(ctx.String(VariantFlag.Name))
	if err != nil {
		return cli.Exit(err, 1)
	}
	results := make([]benchStats, 0, len(variants))
	for _, v := range variants {
		stats, err := runBench(cfg, v)
		if err != nil {
			return cli.Exit(err, 1)
		}
		results = append(results, stats)
	}
	return report(ctx, cfg, results)
}
