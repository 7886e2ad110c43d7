package curve3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// infVec3 is the sentinel returned by vector-valued queries whose
// parameter lies outside [0, 1].
var infVec3 = mgl64.Vec3{mgl64.InfPos, mgl64.InfPos, mgl64.InfPos}

// IsInf reports whether at least one component of v is infinite.
//
// Out-of-range evaluations return a vector with every component set to
// positive infinity; IsInf detects such sentinels.
func IsInf(v mgl64.Vec3) bool {
	return math.IsInf(v[0], 0) || math.IsInf(v[1], 0) || math.IsInf(v[2], 0)
}

// IsNaN reports whether at least one component of v is NaN.
func IsNaN(v mgl64.Vec3) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}
