// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"fmt"
	"sort"

	"github.com/uber/h3-go/v4"
)

// DefaultH3Resolution groups stations at roughly outcrop-to-valley scale.
const DefaultH3Resolution = 7

// RegionCount is the number of measurements falling inside one H3 cell.
type RegionCount struct {
	Cell    string `json:"cell"`
	Samples int    `json:"samples"`
}

// Regions buckets located records into H3 cells at the given resolution
// and returns the per-cell sample counts, largest first, ties by cell id.
// Records without a location are skipped.
func Regions(records []Record, resolution int) ([]RegionCount, error) {
	if resolution < 0 || resolution > 15 {
		return nil, fmt.Errorf("h3 resolution must be in [0,15] (got %d)", resolution)
	}

	counts := make(map[string]int)

	for _, rec := range records {
		if !rec.HasLocation {
			continue
		}

		cell, err := h3.LatLngToCell(h3.NewLatLng(rec.Lat, rec.Lng), resolution)
		if err != nil {
			return nil, fmt.Errorf("converting %g,%g to h3 cell: %w", rec.Lat, rec.Lng, err)
		}

		counts[cell.String()]++
	}

	regions := make([]RegionCount, 0, len(counts))
	for cell, n := range counts {
		regions = append(regions, RegionCount{Cell: cell, Samples: n})
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Samples != regions[j].Samples {
			return regions[i].Samples > regions[j].Samples
		}

		return regions[i].Cell < regions[j].Cell
	})

	return regions, nil
}
