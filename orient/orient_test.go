// Copyright 2026 The Fracset Authors
//
// SPDX-License-Identifier: Apache-2.0
package orient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func TestPoleLowerHemisphere(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
	}{
		{"horizontal", Orientation{Dip: 0, DipDirection: 0}},
		{"vertical north", Orientation{Dip: 90, DipDirection: 0}},
		{"vertical east", Orientation{Dip: 90, DipDirection: 90}},
		{"moderate", Orientation{Dip: 30, DipDirection: 110}},
		{"steep southwest", Orientation{Dip: 80, DipDirection: 225}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.o.Pole()
			assert.GreaterOrEqual(t, v.Z, 0.0, "pole must sit on the lower hemisphere")
			assert.InDelta(t, 1.0, v.Dot(v), tol, "pole must be a unit vector")
		})
	}
}

func TestPoleGeometry(t *testing.T) {
	// A horizontal plane's pole points straight down.
	v := Orientation{Dip: 0, DipDirection: 0}.Pole()
	assert.InDelta(t, 0, v.X, tol)
	assert.InDelta(t, 0, v.Y, tol)
	assert.InDelta(t, 1, v.Z, tol)

	// A plane dipping 90 towards east has a horizontal pole trending west.
	v = Orientation{Dip: 90, DipDirection: 90}.Pole()
	assert.InDelta(t, 0, v.Z, tol)
	assert.InDelta(t, -1, v.X, tol)
}

// azimuthDelta returns the smallest circular difference between two
// azimuths in degrees.
func azimuthDelta(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}

	return d
}

func TestRoundTrip(t *testing.T) {
	for dip := 1.0; dip < 90; dip += 7 {
		for dd := 0.0; dd < 360; dd += 23 {
			o := Orientation{Dip: dip, DipDirection: dd}
			got := o.Pole().Orientation()
			assert.InDelta(t, o.Dip, got.Dip, tol, "dip for %v", o)
			assert.InDelta(t, 0, azimuthDelta(o.DipDirection, got.DipDirection), tol, "dip direction for %v", o)
		}
	}
}

func TestAngularDistance(t *testing.T) {
	a := Orientation{Dip: 30, DipDirection: 110}.Pole()
	b := Orientation{Dip: 45, DipDirection: 200}.Pole()

	assert.InDelta(t, 0, AngularDistance(a, a), tol)
	assert.Equal(t, AngularDistance(a, b), AngularDistance(b, a))
	assert.Greater(t, AngularDistance(a, b), 0.0)

	// 10 degrees of dip separation is 10 degrees of angular distance.
	c := Orientation{Dip: 40, DipDirection: 110}.Pole()
	assert.InDelta(t, 10*math.Pi/180, AngularDistance(a, c), tol)
}

func TestAngularDistanceClamps(t *testing.T) {
	// Accumulated rounding can push the dot product a hair above 1;
	// Acos must not return NaN for it.
	v := Orientation{Dip: 33.3, DipDirection: 271.7}.Pole()
	assert.False(t, math.IsNaN(AngularDistance(v, v)))
}

func TestSphericalMean(t *testing.T) {
	t.Run("identical members", func(t *testing.T) {
		o := Orientation{Dip: 30, DipDirection: 110}
		vs := []Vector{o.Pole(), o.Pole(), o.Pole(), o.Pole()}

		mean := SphericalMean(vs)
		assert.InDelta(t, 30, mean.Dip, tol)
		assert.InDelta(t, 110, mean.DipDirection, tol)
	})

	t.Run("symmetric spread", func(t *testing.T) {
		vs := []Vector{
			Orientation{Dip: 30, DipDirection: 100}.Pole(),
			Orientation{Dip: 30, DipDirection: 120}.Pole(),
		}
		mean := SphericalMean(vs)
		assert.InDelta(t, 110, mean.DipDirection, tol)
	})

	t.Run("zero-length sum does not panic", func(t *testing.T) {
		vs := []Vector{
			{X: 1, Y: 0, Z: 0},
			{X: -1, Y: 0, Z: 0},
		}
		mean := SphericalMean(vs)
		require.False(t, math.IsNaN(mean.Dip))
		require.False(t, math.IsNaN(mean.DipDirection))
	})
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
		want bool
	}{
		{"typical", Orientation{Dip: 45, DipDirection: 180}, true},
		{"flat", Orientation{Dip: 0, DipDirection: 0}, true},
		{"vertical", Orientation{Dip: 90, DipDirection: 359.9}, true},
		{"dip too steep", Orientation{Dip: 90.1, DipDirection: 10}, false},
		{"negative dip", Orientation{Dip: -1, DipDirection: 10}, false},
		{"azimuth wrapped", Orientation{Dip: 30, DipDirection: 360}, false},
		{"negative azimuth", Orientation{Dip: 30, DipDirection: -0.1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.o.Valid())
		})
	}
}

func TestResultantLength(t *testing.T) {
	o := Orientation{Dip: 30, DipDirection: 110}
	tight := []Vector{o.Pole(), o.Pole(), o.Pole()}
	assert.InDelta(t, 1.0, ResultantLength(tight), tol)

	dispersed := []Vector{{X: 1}, {X: -1}}
	assert.InDelta(t, 0.0, ResultantLength(dispersed), tol)

	assert.Equal(t, 0.0, ResultantLength(nil))
}

func TestFisherK(t *testing.T) {
	o := Orientation{Dip: 30, DipDirection: 110}
	aligned := []Vector{o.Pole(), o.Pole(), o.Pole()}
	assert.True(t, math.IsInf(FisherK(aligned), 1))

	assert.Equal(t, 0.0, FisherK(nil))
	assert.Equal(t, 0.0, FisherK(aligned[:1]))

	spread := []Vector{
		Orientation{Dip: 30, DipDirection: 100}.Pole(),
		Orientation{Dip: 30, DipDirection: 120}.Pole(),
		Orientation{Dip: 35, DipDirection: 110}.Pole(),
	}
	k := FisherK(spread)
	assert.Greater(t, k, 1.0)
	assert.False(t, math.IsInf(k, 1))
}
