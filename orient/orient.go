// Copyright 2026 The Fracset Authors
//
// SPDX-License-Identifier: Apache-2.0
package orient

import (
	"fmt"
	"math"
)

// Orientation represents a planar measurement as dip angle and dip
// direction, both in degrees. Dip is the angle between the plane and the
// horizontal (0-90); dip direction is the azimuth of steepest descent,
// clockwise from north (0-360).
type Orientation struct {
	Dip          float64 `json:"dip"`
	DipDirection float64 `json:"dipDirection"`
}

// String returns a string representation of the Orientation.
func (o Orientation) String() string {
	return fmt.Sprintf("%03.0f/%05.1f", o.Dip, o.DipDirection)
}

// Valid reports whether the measurement is inside the physical range:
// dip in [0,90], dip direction in [0,360).
func (o Orientation) Valid() bool {
	return o.Dip >= 0 && o.Dip <= 90 &&
		o.DipDirection >= 0 && o.DipDirection < 360
}

// Vector is a unit vector in the East-North-Down frame, canonicalized to
// the lower hemisphere (Z >= 0).
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pole returns the pole to the plane: the unit normal, flipped to the
// lower hemisphere. The pole trend is opposite the dip direction and its
// plunge is the dip's complement.
func (o Orientation) Pole() Vector {
	trend := math.Mod(o.DipDirection+180, 360) * math.Pi / 180
	plunge := (90 - o.Dip) * math.Pi / 180

	v := Vector{
		X: math.Cos(plunge) * math.Sin(trend),
		Y: math.Cos(plunge) * math.Cos(trend),
		Z: math.Sin(plunge),
	}
	if v.Z < 0 {
		v = Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
	}

	return v
}

// Orientation maps a lower-hemisphere pole vector back to the plane it is
// normal to. Inverse of Orientation.Pole for non-degenerate input.
func (v Vector) Orientation() Orientation {
	plunge := math.Asin(v.Z) * 180 / math.Pi
	trend := math.Atan2(v.X, v.Y) * 180 / math.Pi

	return Orientation{
		Dip:          90 - plunge,
		DipDirection: mod360(trend - 180),
	}
}

// Dot returns the scalar product of two vectors.
func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// AngularDistance returns the great-circle angle between two unit vectors
// in radians. Symmetric, and zero only for equal vectors.
func AngularDistance(u, v Vector) float64 {
	d := u.Dot(v)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(d)
}

// SphericalMean returns the mean orientation of a set of pole vectors: the
// normalized vector sum, flipped to the lower hemisphere. A zero-length
// sum (a fully dispersed set) falls back to a unit denominator and yields
// a degenerate but well-defined mean; callers can detect the condition
// through ResultantLength.
func SphericalMean(vectors []Vector) Orientation {
	var sum Vector
	for _, v := range vectors {
		sum.X += v.X
		sum.Y += v.Y
		sum.Z += v.Z
	}

	length := math.Sqrt(sum.Dot(sum))
	if length == 0 {
		length = 1
	}

	mean := Vector{X: sum.X / length, Y: sum.Y / length, Z: sum.Z / length}
	if mean.Z < 0 {
		mean = Vector{X: -mean.X, Y: -mean.Y, Z: -mean.Z}
	}

	return mean.Orientation()
}

// mod360 maps an angle in degrees onto [0,360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}

	return m
}
