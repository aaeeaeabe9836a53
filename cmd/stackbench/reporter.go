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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

const (
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
)

// report prints the after-run summary, as a table on stdout or as a JSON
// document under --json.
func report(ctx *cli.Context, cfg benchConfig, results []benchStats) error {
	if ctx.Bool(JSONFlag.Name) {
		out := struct {
			Capacity int          `json:"capacity"`
			Pushes   int          `json:"pushes"`
			Seed     int64        `json:"seed"`
			Results  []benchStats `json:"results"`
		}{cfg.Capacity, cfg.Pushes, cfg.Seed, results}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("capacity %d, %d pushes + %d pops per trial, seed %d\n\n",
		cfg.Capacity, cfg.Pushes, cfg.Pushes, cfg.Seed)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Variant", "Trials", "Min", "Max", "Mean", "Stddev", "ns/op"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		table.Append([]string{
			r.Variant,
			fmt.Sprintf("%d", r.Trials),
			r.Min.String(),
			r.Max.String(),
			r.Mean.String(),
			r.StdDev.String(),
			fmt.Sprintf("%.2f", r.NsPerOp),
		})
	}
	table.Render()

	// With both variants measured, spell out what the bounds checks cost.
	if len(results) == 2 && results[1].Mean > 0 {
		ratio := float64(results[0].Mean) / float64(results[1].Mean)
		line := fmt.Sprintf("checked/unchecked mean ratio: %.2fx", ratio)
		if isatty.IsTerminal(os.Stdout.Fd()) {
			line = colorGreen + line + colorReset
		}
		fmt.Println(line)
	}
	return nil
}
