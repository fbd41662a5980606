// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import "fmt"

// Defaults for the two clustering engines. Angular values are degrees.
const (
	DefaultDBSCANEpsDeg   = 10.0
	DefaultDBSCANMinPts   = 4
	DefaultOPTICSMinPts   = 10
	DefaultOPTICSQuantile = 0.75
	DefaultMinClusterSize = 10
	DefaultNamePrefix     = "Set "
)

// DefaultPalette is the cyclic color palette assigned to fracture sets by
// rank when the caller supplies none.
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
}

// DBSCANOptions configures ByDensity. Zero values take the package
// defaults.
type DBSCANOptions struct {
	// EpsDeg is the neighborhood radius in degrees of angular distance.
	EpsDeg float64
	// MinPts is the minimum neighborhood size (self included) for a
	// sample to qualify as a core point.
	MinPts int
	// Palette is the ordered color list cycled over cluster ranks.
	Palette []string
	// NamePrefix prefixes generated cluster names.
	NamePrefix string
}

func (o DBSCANOptions) withDefaults() DBSCANOptions {
	if o.EpsDeg == 0 {
		o.EpsDeg = DefaultDBSCANEpsDeg
	}

	if o.MinPts == 0 {
		o.MinPts = DefaultDBSCANMinPts
	}

	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}

	if o.NamePrefix == "" {
		o.NamePrefix = DefaultNamePrefix
	}

	return o
}

func (o DBSCANOptions) validate() error {
	if o.EpsDeg <= 0 || o.EpsDeg > 90 {
		return fmt.Errorf("epsDeg must be in (0,90] degrees (got %g)", o.EpsDeg)
	}

	if o.MinPts < 1 {
		return fmt.Errorf("minPts must be at least 1 (got %d)", o.MinPts)
	}

	return nil
}

// OPTICSOptions configures ByOrdering. Zero values take the package
// defaults; EpsMaxDeg zero means the neighborhood search is unbounded.
type OPTICSOptions struct {
	// MinPts is the neighborhood size (self included) that makes a
	// sample a core point, and the rank of the neighbor distance used
	// as its core distance.
	MinPts int
	// EpsMaxDeg caps the neighborhood search radius in degrees.
	// Zero leaves it unbounded.
	EpsMaxDeg float64
	// Quantile over the finite reachability values that sets the
	// extraction threshold.
	Quantile float64
	// MinClusterSize is the shortest reachability segment kept as a
	// cluster; shorter segments are dumped into the outlier set.
	MinClusterSize int
	// Palette is the ordered color list cycled over cluster ranks.
	Palette []string
	// NamePrefix prefixes generated cluster names.
	NamePrefix string
}

func (o OPTICSOptions) withDefaults() OPTICSOptions {
	if o.MinPts == 0 {
		o.MinPts = DefaultOPTICSMinPts
	}

	if o.Quantile == 0 {
		o.Quantile = DefaultOPTICSQuantile
	}

	if o.MinClusterSize == 0 {
		o.MinClusterSize = DefaultMinClusterSize
	}

	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}

	if o.NamePrefix == "" {
		o.NamePrefix = DefaultNamePrefix
	}

	return o
}

func (o OPTICSOptions) validate() error {
	if o.MinPts < 1 {
		return fmt.Errorf("minPts must be at least 1 (got %d)", o.MinPts)
	}

	if o.EpsMaxDeg < 0 {
		return fmt.Errorf("epsMaxDeg must not be negative (got %g)", o.EpsMaxDeg)
	}

	if o.Quantile <= 0 || o.Quantile > 1 {
		return fmt.Errorf("quantile must be in (0,1] (got %g)", o.Quantile)
	}

	if o.MinClusterSize < 1 {
		return fmt.Errorf("minClusterSize must be at least 1 (got %d)", o.MinClusterSize)
	}

	return nil
}
