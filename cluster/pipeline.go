// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"fmt"
	"math"

	"github.com/jmarzano/fracset/orient"
)

// Group is one coherent fracture set: its members in absorption order,
// the spherical-mean centroid of their poles, and presentation hints for
// the consumer.
type Group struct {
	Name string `json:"name"`
	// Color is drawn from the configured palette by cluster rank.
	Color    string               `json:"color,omitempty"`
	Centroid orient.Orientation   `json:"centroid"`
	Members  []orient.Orientation `json:"members"`
	// MemberIndices are the members' positions in the input population.
	MemberIndices []int `json:"memberIndices"`
	// ResultantLength is R-bar of the members' poles; values near zero
	// flag a low-confidence centroid.
	ResultantLength float64 `json:"resultantLength"`
}

// Result is the façade output: the extracted fracture sets plus the
// samples that belong to none of them, in input order.
type Result struct {
	Groups   []Group              `json:"clusters"`
	Outliers []orient.Orientation `json:"outliers"`
}

// ByDensity groups orientation samples into fracture sets with DBSCAN
// over the angular metric. Pure: identical inputs and options produce
// identical results. Empty input yields an empty result without error.
func ByDensity(samples []orient.Orientation, opts DBSCANOptions) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("dbscan options: %w", err)
	}

	poles := polesOf(samples)
	clusters, labels := dbscan(poles, opts.EpsDeg*math.Pi/180, opts.MinPts)

	return assemble(samples, poles, clusters, noiseIndices(labels), opts.Palette, opts.NamePrefix), nil
}

// ByOrdering groups orientation samples into fracture sets with OPTICS:
// a reachability ordering followed by a quantile-threshold extraction.
// Pure, like ByDensity.
func ByOrdering(samples []orient.Orientation, opts OPTICSOptions) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("optics options: %w", err)
	}

	poles := polesOf(samples)
	ord := buildOrdering(poles, opts.MinPts, opts.EpsMaxDeg*math.Pi/180)
	clusters, outlier := extractClusters(ord, opts.Quantile, opts.MinClusterSize)

	var outliers []int

	for i, isOut := range outlier {
		if isOut {
			outliers = append(outliers, i)
		}
	}

	return assemble(samples, poles, clusters, outliers, opts.Palette, opts.NamePrefix), nil
}

// BuildOrdering exposes the OPTICS ordering phase on its own, for callers
// that want the raw reachability plot. Only MinPts and EpsMaxDeg of the
// options are used.
func BuildOrdering(samples []orient.Orientation, opts OPTICSOptions) (Ordering, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return Ordering{}, fmt.Errorf("optics options: %w", err)
	}

	return buildOrdering(polesOf(samples), opts.MinPts, opts.EpsMaxDeg*math.Pi/180), nil
}

// polesOf converts every sample to its pole vector once, up front.
func polesOf(samples []orient.Orientation) []orient.Vector {
	poles := make([]orient.Vector, len(samples))
	for i, s := range samples {
		poles[i] = s.Pole()
	}

	return poles
}

// assemble builds the façade result: spherical-mean centroids, generated
// names, palette colors by rank, and the outlier samples in input order.
func assemble(samples []orient.Orientation, poles []orient.Vector,
	clusters [][]int, outliers []int, palette []string, prefix string) *Result {
	res := &Result{
		Groups:   make([]Group, 0, len(clusters)),
		Outliers: make([]orient.Orientation, 0, len(outliers)),
	}

	for rank, idxs := range clusters {
		members := make([]orient.Orientation, len(idxs))
		vs := make([]orient.Vector, len(idxs))

		for k, i := range idxs {
			members[k] = samples[i]
			vs[k] = poles[i]
		}

		res.Groups = append(res.Groups, Group{
			Name:            fmt.Sprintf("%s%d", prefix, rank+1),
			Color:           palette[rank%len(palette)],
			Centroid:        orient.SphericalMean(vs),
			Members:         members,
			MemberIndices:   idxs,
			ResultantLength: orient.ResultantLength(vs),
		})
	}

	for _, i := range outliers {
		res.Outliers = append(res.Outliers, samples[i])
	}

	return res
}
