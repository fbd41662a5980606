// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"github.com/jmarzano/fracset/orient"
)

// Labels used while clustering. Positive values are 1-based cluster ids.
const (
	labelUnvisited = 0
	labelNoise     = -1
)

// regionQuery returns the indices of all poles within eps radians of
// poles[i], the query pole itself included.
func regionQuery(poles []orient.Vector, i int, eps float64) []int {
	var neighbors []int

	for j, v := range poles {
		if orient.AngularDistance(poles[i], v) <= eps {
			neighbors = append(neighbors, j)
		}
	}

	return neighbors
}

// dbscan runs density-based clustering over pole vectors with the angular
// metric. eps is in radians. It returns the clusters as lists of input
// indices in absorption order, plus the final label of every sample.
//
// A sample first labeled noise can still be absorbed into a later cluster
// as a border point; only labels surviving the full pass are final.
func dbscan(poles []orient.Vector, eps float64, minPts int) ([][]int, []int) {
	n := len(poles)
	labels := make([]int, n)

	var clusters [][]int

	for i := 0; i < n; i++ {
		if labels[i] != labelUnvisited {
			continue
		}

		neighbors := regionQuery(poles, i, eps)
		if len(neighbors) < minPts {
			labels[i] = labelNoise

			continue
		}

		id := len(clusters) + 1
		labels[i] = id
		members := []int{i}

		// Seed the expansion queue with the core point's neighborhood.
		// queued gives constant-time membership so no sample enters the
		// queue twice.
		queued := make([]bool, n)
		queued[i] = true

		queue := make([]int, 0, len(neighbors))

		for _, j := range neighbors {
			if !queued[j] {
				queued[j] = true
				queue = append(queue, j)
			}
		}

		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]

			if labels[q] == labelNoise {
				// Border point: absorbed, but already known not to
				// be core, so it does not expand further.
				labels[q] = id
				members = append(members, q)

				continue
			}

			if labels[q] != labelUnvisited {
				continue
			}

			labels[q] = id
			members = append(members, q)

			qNeighbors := regionQuery(poles, q, eps)
			if len(qNeighbors) >= minPts {
				for _, j := range qNeighbors {
					if !queued[j] {
						queued[j] = true
						queue = append(queue, j)
					}
				}
			}
		}

		clusters = append(clusters, members)
	}

	return clusters, labels
}

// noiseIndices returns, in input order, the samples still labeled noise
// after a full dbscan pass.
func noiseIndices(labels []int) []int {
	var noise []int

	for i, l := range labels {
		if l == labelNoise {
			noise = append(noise, i)
		}
	}

	return noise
}
