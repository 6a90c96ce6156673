// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package factor

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/qcrypto-edu/qday/sampling"
)

// Stats summarizes the iteration counts of repeated successful rho runs
// against one modulus. Mean iteration counts grow roughly with n^(1/4)
// for semiprime n, which is the property the demos plot.
type Stats struct {
	Trials int
	Mean   float64
	Median float64
	StdDev float64
}

// ProfileRho runs PollardRho repeatedly against n, drawing a fresh
// constant each trial, and aggregates the iteration counts of the
// successful runs. Failed runs (degenerate cycles) are retried within the
// same trial, so each trial contributes exactly one sample.
func ProfileRho(n uint64, trials int, cfg Config) (Stats, error) {
	if trials < 1 {
		return Stats{}, fmt.Errorf("factor: trials must be positive, got %d", trials)
	}

	src := cfg.Source
	if src == nil {
		var err error
		if src, err = sampling.New(); err != nil {
			return Stats{}, err
		}
	}

	const retriesPerTrial = 16

	counts := make([]float64, 0, trials)
	for t := 0; t < trials; t++ {
		var res *Result
		var err error
		for attempt := 0; attempt < retriesPerTrial; attempt++ {
			trialCfg := cfg
			trialCfg.Source = src
			trialCfg.C = 0 // fresh constant per attempt
			trialCfg.X0 = 0
			if res, err = PollardRho(n, trialCfg); err == nil {
				break
			}
		}
		if err != nil {
			return Stats{}, fmt.Errorf("trial %d: %w", t, err)
		}
		counts = append(counts, float64(res.Iterations))
	}

	mean, err := stats.Mean(counts)
	if err != nil {
		return Stats{}, err
	}
	median, err := stats.Median(counts)
	if err != nil {
		return Stats{}, err
	}
	stdev, err := stats.StandardDeviation(counts)
	if err != nil {
		return Stats{}, err
	}

	return Stats{Trials: trials, Mean: mean, Median: median, StdDev: stdev}, nil
}
