// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

// Package ingest reads field datasets of orientation measurements and
// hands the clustering engine a pre-validated population. Records that
// fail validation are discarded with a warning; the engine itself never
// sees them.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/jmarzano/fracset/orient"
)

// Record is one field measurement: the orientation plus whatever station
// context the dataset carries. The clustering engine ignores everything
// but the orientation.
type Record struct {
	Station     string             `json:"station,omitempty"`
	Orientation orient.Orientation `json:"orientation"`
	Lat         float64            `json:"lat,omitempty"`
	Lng         float64            `json:"lng,omitempty"`
	HasLocation bool               `json:"-"`
}

// Metrics counts what a read pass saw.
type Metrics struct {
	Read      int
	Discarded int
}

// Column aliases recognized after header folding.
var (
	dipAliases     = []string{"dip", "dipangle", "buzamiento"}
	dipDirAliases  = []string{"dipdirection", "dipdir", "azimuth", "direcciondebuzamiento"}
	latAliases     = []string{"lat", "latitude", "latitud"}
	lngAliases     = []string{"lng", "lon", "long", "longitude", "longitud"}
	stationAliases = []string{"station", "site", "estacion", "id"}
)

type columns struct {
	dip, dipDir, lat, lng, station int
}

func findColumn(header []string, aliases []string) int {
	for i, h := range header {
		folded := foldHeader(h)
		for _, a := range aliases {
			if folded == a {
				return i
			}
		}
	}

	return -1
}

func mapColumns(header []string) (columns, error) {
	cols := columns{
		dip:     findColumn(header, dipAliases),
		dipDir:  findColumn(header, dipDirAliases),
		lat:     findColumn(header, latAliases),
		lng:     findColumn(header, lngAliases),
		station: findColumn(header, stationAliases),
	}

	if cols.dip < 0 || cols.dipDir < 0 {
		return cols, fmt.Errorf("header %v lacks dip and dip-direction columns", header)
	}

	return cols, nil
}

// ReadFile reads a CSV dataset from disk, reporting progress on stderr
// when it is a terminal.
func ReadFile(path string) ([]Record, Metrics, error) {
	f, err := os.Open(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	if info, err := f.Stat(); err == nil && isatty.IsTerminal(os.Stderr.Fd()) {
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetDescription("Reading "+path),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		reader = io.TeeReader(f, bar)
	}

	return Read(reader)
}

// Read parses a CSV dataset: a header row naming at least the dip and
// dip-direction columns, then one measurement per row. Rows whose
// orientation is malformed or out of range are discarded with a warning
// and counted, never returned.
func Read(r io.Reader) ([]Record, Metrics, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []Record{}, Metrics{}, nil
	} else if err != nil {
		return nil, Metrics{}, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, Metrics{}, err
	}

	var (
		records []Record
		metrics Metrics
	)

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, metrics, fmt.Errorf("reading line %d: %w", line, err)
		}

		metrics.Read++

		rec, err := parseRow(row, cols)
		if err != nil {
			metrics.Discarded++
			log.Printf("Discarding line %d: %s", line, err)

			continue
		}

		records = append(records, rec)
	}

	return records, metrics, nil
}

func parseRow(row []string, cols columns) (Record, error) {
	var rec Record

	dip, err := parseField(row, cols.dip, "dip")
	if err != nil {
		return rec, err
	}

	dipDir, err := parseField(row, cols.dipDir, "dip direction")
	if err != nil {
		return rec, err
	}

	rec.Orientation = orient.Orientation{Dip: dip, DipDirection: dipDir}
	if !rec.Orientation.Valid() {
		return rec, fmt.Errorf("orientation %g/%g out of range", dip, dipDir)
	}

	if cols.station >= 0 && cols.station < len(row) {
		rec.Station = row[cols.station]
	}

	if cols.lat >= 0 && cols.lng >= 0 {
		lat, latErr := parseField(row, cols.lat, "lat")
		lng, lngErr := parseField(row, cols.lng, "lng")

		if latErr == nil && lngErr == nil {
			if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
				return rec, fmt.Errorf("coordinates %g,%g out of range", lat, lng)
			}

			rec.Lat, rec.Lng = lat, lng
			rec.HasLocation = true
		}
	}

	return rec, nil
}

func parseField(row []string, col int, name string) (float64, error) {
	if col < 0 || col >= len(row) || row[col] == "" {
		return 0, fmt.Errorf("missing %s value", name)
	}

	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", name, row[col])
	}

	return v, nil
}

// Orientations projects the records down to the measurement population
// the clustering engine consumes.
func Orientations(records []Record) []orient.Orientation {
	samples := make([]orient.Orientation, len(records))
	for i, r := range records {
		samples[i] = r.Orientation
	}

	return samples
}
