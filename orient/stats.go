// Copyright 2026 The Fracset Authors
//
// SPDX-License-Identifier: Apache-2.0
package orient

import "math"

// ResultantLength returns R-bar, the normalized magnitude of the vector
// sum, in [0,1]. Values near 1 indicate a tight set; values near 0 mean
// the set is dispersed and its spherical mean carries little meaning.
func ResultantLength(vectors []Vector) float64 {
	if len(vectors) == 0 {
		return 0
	}

	var sum Vector
	for _, v := range vectors {
		sum.X += v.X
		sum.Y += v.Y
		sum.Z += v.Z
	}

	return math.Sqrt(sum.Dot(sum)) / float64(len(vectors))
}

// FisherK returns the Fisher concentration estimate k ~ (n-1)/(n-R) for a
// set of n pole vectors with resultant magnitude R. Returns +Inf for a
// perfectly aligned set and 0 for fewer than two vectors, where the
// estimator is undefined.
func FisherK(vectors []Vector) float64 {
	n := float64(len(vectors))
	if n < 2 {
		return 0
	}

	r := ResultantLength(vectors) * n
	if n == r {
		return math.Inf(1)
	}

	return (n - 1) / (n - r)
}
