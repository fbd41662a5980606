// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarzano/fracset/orient"
)

func TestFoldHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dip", "dip"},
		{"Dip Direction", "dipdirection"},
		{"dip_direction", "dipdirection"},
		{"  DIP-DIR  ", "dipdir"},
		{"Dirección de buzamiento", "direcciondebuzamiento"},
		{"Estación", "estacion"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, foldHeader(tc.input))
		})
	}
}

func TestReadBasic(t *testing.T) {
	data := `station,dip,dip direction,lat,lng
S1,30,110,-34.90,-56.16
S2,45.5,250,-34.91,-56.17
S3,10,359.9,,
`

	records, metrics, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, Metrics{Read: 3, Discarded: 0}, metrics)
	require.Len(t, records, 3)

	assert.Equal(t, "S1", records[0].Station)
	assert.Equal(t, orient.Orientation{Dip: 30, DipDirection: 110}, records[0].Orientation)
	assert.True(t, records[0].HasLocation)
	assert.InDelta(t, -34.90, records[0].Lat, 1e-9)

	assert.False(t, records[2].HasLocation, "empty coordinates leave the record unlocated")
}

func TestReadDiscardsInvalidRows(t *testing.T) {
	data := `dip,dipdir
30,110
95,110
30,360
not-a-number,10
,10
45,200
`

	records, metrics, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 6, metrics.Read)
	assert.Equal(t, 4, metrics.Discarded)

	require.Len(t, records, 2)
	assert.Equal(t, orient.Orientation{Dip: 30, DipDirection: 110}, records[0].Orientation)
	assert.Equal(t, orient.Orientation{Dip: 45, DipDirection: 200}, records[1].Orientation)
}

func TestReadHeaderAliases(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"canonical", "dip,dip direction"},
		{"snake case", "Dip_Angle,Dip_Direction"},
		{"azimuth", "dip,azimuth"},
		{"spanish", "Buzamiento,Dirección de buzamiento"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, _, err := Read(strings.NewReader(tc.header + "\n30,110\n"))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, orient.Orientation{Dip: 30, DipDirection: 110}, records[0].Orientation)
		})
	}
}

func TestReadMissingColumns(t *testing.T) {
	_, _, err := Read(strings.NewReader("station,strike\nS1,40\n"))
	assert.Error(t, err)
}

func TestReadEmptyInput(t *testing.T) {
	records, metrics, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, Metrics{}, metrics)
}

func TestOrientations(t *testing.T) {
	records := []Record{
		{Orientation: orient.Orientation{Dip: 30, DipDirection: 110}},
		{Orientation: orient.Orientation{Dip: 60, DipDirection: 250}},
	}

	samples := Orientations(records)
	require.Len(t, samples, 2)
	assert.Equal(t, records[1].Orientation, samples[1])
}

func TestRegions(t *testing.T) {
	records := []Record{
		{Lat: -34.90, Lng: -56.16, HasLocation: true},
		{Lat: -34.90, Lng: -56.16, HasLocation: true},
		{Lat: -30.90, Lng: -55.55, HasLocation: true},
		{HasLocation: false},
	}

	regions, err := Regions(records, DefaultH3Resolution)
	require.NoError(t, err)

	require.Len(t, regions, 2)
	assert.Equal(t, 2, regions[0].Samples, "largest cell first")
	assert.Equal(t, 1, regions[1].Samples)
	assert.NotEqual(t, regions[0].Cell, regions[1].Cell)
}

func TestRegionsBadResolution(t *testing.T) {
	_, err := Regions(nil, 16)
	assert.Error(t, err)
}
