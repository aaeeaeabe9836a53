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
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hotloop/fixedstack/stack"
)

type benchConfig struct {
	Capacity int
	Pushes   int
	Trials   int
	Seed     int64
}

// benchStats aggregates the trial timings of one variant.
type benchStats struct {
	Variant string        `json:"variant"`
	Trials  int           `json:"trials"`
	Ops     int64         `json:"opsPerTrial"` // pushes + pops
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
	Mean    time.Duration `json:"mean"`
	StdDev  time.Duration `json:"stddev"`
	NsPerOp float64       `json:"nsPerOp"`
}

func configFromCLI(ctx *cli.Context) (benchConfig, error) {
	cfg := benchConfig{
		Capacity: ctx.Int(CapacityFlag.Name),
		Pushes:   ctx.Int(PushesFlag.Name),
		Trials:   ctx.Int(TrialsFlag.Name),
		Seed:     ctx.Int64(SeedFlag.Name),
	}
	if cfg.Pushes == 0 {
		cfg.Pushes = cfg.Capacity
	}
	switch {
	case cfg.Capacity <= 0:
		return cfg, fmt.Errorf("capacity must be positive, got %d", cfg.Capacity)
	case cfg.Pushes <= 0:
		return cfg, fmt.Errorf("pushes must be positive, got %d", cfg.Pushes)
	case cfg.Pushes > cfg.Capacity:
		return cfg, fmt.Errorf("pushes (%d) exceeds capacity (%d)", cfg.Pushes, cfg.Capacity)
	case cfg.Trials <= 0:
		return cfg, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func selectVariants(name string) ([]string, error) {
	switch name {
	case "checked", "unchecked":
		return []string{name}, nil
	case "both":
		return []string{"checked", "unchecked"}, nil
	default:
		return nil, fmt.Errorf(`unknown variant %q, want "checked", "unchecked" or "both"`, name)
	}
}

// runBench times cfg.Trials fill/drain rounds of the given variant over one
// stack and one pre-generated input slice. Each round checksums the popped
// values; a checksum mismatch means the stack lost LIFO order and aborts
// the run.
func runBench(cfg benchConfig, variant string) (benchStats, error) {
	st, err := stack.New[int32](cfg.Capacity)
	if err != nil {
		return benchStats{}, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	values := make([]int32, cfg.Pushes)
	var want int64
	for i := range values {
		values[i] = rng.Int31()
		want += int64(values[i])
	}

	durations := make([]time.Duration, cfg.Trials)
	for i := range durations {
		var (
			sum   int64
			start = time.Now()
		)
		switch variant {
		case "checked":
			sum, err = fillDrainChecked(st, values)
		case "unchecked":
			sum = fillDrainUnchecked(st, values)
		}
		durations[i] = time.Since(start)
		if err != nil {
			return benchStats{}, fmt.Errorf("trial %d: %w", i, err)
		}
		if sum != want {
			return benchStats{}, fmt.Errorf("trial %d: checksum mismatch, want %d, got %d", i, want, sum)
		}
	}
	stats := computeStats(durations, 2*int64(cfg.Pushes))
	stats.Variant = variant
	return stats, nil
}

func fillDrainChecked(st *stack.Stack[int32], values []int32) (int64, error) {
	for _, v := range values {
		if err := st.Push(v); err != nil {
			return 0, err
		}
	}
	var sum int64
	for !st.Empty() {
		v, err := st.Pop()
		if err != nil {
			return 0, err
		}
		sum += int64(v)
	}
	return sum, nil
}

func fillDrainUnchecked(st *stack.Stack[int32], values []int32) int64 {
	// The stack starts empty and len(values) <= Cap(), so the unchecked
	// preconditions hold throughout.
	for _, v := range values {
		st.PushUnchecked(v)
	}
	var sum int64
	for st.Len() > 0 {
		sum += int64(st.PopUnchecked())
	}
	return sum
}

func computeStats(durations []time.Duration, opsPerTrial int64) benchStats {
	stats := benchStats{
		Trials: len(durations),
		Ops:    opsPerTrial,
		Min:    durations[0],
		Max:    durations[0],
	}
	var total time.Duration
	for _, d := range durations {
		total += d
		if d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
	}
	stats.Mean = total / time.Duration(len(durations))

	var variance float64
	for _, d := range durations {
		diff := float64(d - stats.Mean)
		variance += diff * diff
	}
	stats.StdDev = time.Duration(math.Sqrt(variance / float64(len(durations))))
	stats.NsPerOp = float64(stats.Mean) / float64(opsPerTrial)
	return stats
}
