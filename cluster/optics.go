// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"container/heap"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jmarzano/fracset/orient"
)

// Ordering is the result of the OPTICS ordering phase over a fixed input
// population. Order is a permutation of the input indices; the distance
// slices are indexed by original input index, in radians, and may hold
// +Inf.
type Ordering struct {
	Order                []int     `json:"order"`
	CoreDistance         []float64 `json:"coreDistance"`
	ReachabilityDistance []float64 `json:"reachabilityDistance"`
}

// reachItem is a pending (reachability, sample) pair in the ordering
// queue. Entries go stale when their sample's reachability improves or
// the sample is processed; stale entries are skipped on pop.
type reachItem struct {
	reach float64
	index int
}

// reachQueue orders items by reachability, ties broken by lowest input
// index. This matches a left-to-right linear scan over the population.
type reachQueue []reachItem

func (q reachQueue) Len() int { return len(q) }

func (q reachQueue) Less(i, j int) bool {
	if q[i].reach != q[j].reach {
		return q[i].reach < q[j].reach
	}

	return q[i].index < q[j].index
}

func (q reachQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *reachQueue) Push(x any) { *q = append(*q, x.(reachItem)) }

func (q *reachQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// neighborsWithin returns the indices of all poles within epsMax radians
// of poles[i] (self included) and their distances. epsMax <= 0 leaves the
// search unbounded.
func neighborsWithin(poles []orient.Vector, i int, epsMax float64) ([]int, []float64) {
	var (
		neighbors []int
		dists     []float64
	)

	for j, v := range poles {
		d := orient.AngularDistance(poles[i], v)
		if epsMax > 0 && d > epsMax {
			continue
		}

		neighbors = append(neighbors, j)
		dists = append(dists, d)
	}

	return neighbors, dists
}

// buildOrdering runs the OPTICS ordering phase. epsMax is in radians;
// zero or negative leaves the neighborhood search unbounded.
func buildOrdering(poles []orient.Vector, minPts int, epsMax float64) Ordering {
	n := len(poles)

	ord := Ordering{
		Order:                make([]int, 0, n),
		CoreDistance:         make([]float64, n),
		ReachabilityDistance: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ord.CoreDistance[i] = math.Inf(1)
		ord.ReachabilityDistance[i] = math.Inf(1)
	}

	processed := make([]bool, n)

	pq := make(reachQueue, 0, n)
	for i := 0; i < n; i++ {
		pq = append(pq, reachItem{reach: math.Inf(1), index: i})
	}

	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(reachItem)
		p := item.index

		if processed[p] || item.reach != ord.ReachabilityDistance[p] {
			continue // stale entry
		}

		processed[p] = true
		ord.Order = append(ord.Order, p)

		neighbors, dists := neighborsWithin(poles, p, epsMax)
		if len(neighbors) < minPts {
			continue
		}

		sorted := append([]float64(nil), dists...)
		sort.Float64s(sorted)
		ord.CoreDistance[p] = sorted[minPts-1]

		for k, o := range neighbors {
			if processed[o] {
				continue
			}

			r := math.Max(ord.CoreDistance[p], dists[k])
			if r < ord.ReachabilityDistance[o] {
				ord.ReachabilityDistance[o] = r
				heap.Push(&pq, reachItem{reach: r, index: o})
			}
		}
	}

	return ord
}

// reachabilityThreshold computes the extraction cut: the value at the
// given quantile of the sorted finite reachability values, or +Inf when
// none are finite.
func reachabilityThreshold(reach []float64, quantile float64) float64 {
	var finite []float64

	for _, r := range reach {
		if !math.IsInf(r, 1) {
			finite = append(finite, r)
		}
	}

	if len(finite) == 0 {
		return math.Inf(1)
	}

	sort.Float64s(finite)

	return stat.Quantile(quantile, stat.Empirical, finite, nil)
}

// extractClusters cuts the reachability plot at a single quantile
// threshold. It walks the ordering accumulating runs of samples whose
// reachability stays at or under the threshold; a run at least
// minClusterSize long becomes a cluster, a shorter one is dumped into the
// outlier set.
//
// A sample that breaks the threshold is always flagged as an outlier,
// even though it also seeds the next run and can end up a member of the
// following cluster. Downstream consumers rely on this exact behavior.
func extractClusters(ord Ordering, quantile float64, minClusterSize int) ([][]int, []bool) {
	threshold := reachabilityThreshold(ord.ReachabilityDistance, quantile)

	var (
		clusters [][]int
		segment  []int
	)

	outlier := make([]bool, len(ord.ReachabilityDistance))

	closeSegment := func() {
		if len(segment) >= minClusterSize {
			clusters = append(clusters, segment)
			return
		}

		for _, i := range segment {
			outlier[i] = true
		}
	}

	for _, i := range ord.Order {
		if ord.ReachabilityDistance[i] <= threshold {
			segment = append(segment, i)

			continue
		}

		closeSegment()
		outlier[i] = true
		segment = []int{i}
	}

	closeSegment()

	return clusters, outlier
}
