// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

package costmodel

import (
	"fmt"
	"math/big"
)

const secondsPerYear = 365 * 24 * 3600

// TimeAtRate renders an operation count as a human-readable duration at
// the given rate (operations per second), scaling through seconds,
// minutes, hours and days before switching to years, and to scientific
// notation once years stop being readable.
func TimeAtRate(ops *big.Float, opsPerSecond float64) string {
	secs := new(big.Float).Quo(ops, big.NewFloat(opsPerSecond))

	switch {
	case secs.Cmp(big.NewFloat(60)) < 0:
		f, _ := secs.Float64()
		return fmt.Sprintf("%.2f sec", f)
	case secs.Cmp(big.NewFloat(3600)) < 0:
		f, _ := secs.Float64()
		return fmt.Sprintf("%.2f min", f/60)
	case secs.Cmp(big.NewFloat(86400)) < 0:
		f, _ := secs.Float64()
		return fmt.Sprintf("%.2f hours", f/3600)
	case secs.Cmp(big.NewFloat(secondsPerYear)) < 0:
		f, _ := secs.Float64()
		return fmt.Sprintf("%.2f days", f/86400)
	}

	years := secs.Quo(secs, big.NewFloat(secondsPerYear))
	if years.Cmp(big.NewFloat(1e6)) < 0 {
		f, _ := years.Float64()
		return fmt.Sprintf("%.2f years", f)
	}
	return years.Text('e', 2) + " years"
}
