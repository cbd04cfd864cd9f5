// Package lighting drives the directional sun light through a day/night cycle.
//
// DayCycle owns a single orientation angle around the X axis. Each frame it
// advances the angle, maps it to a day progress value in [0,1] and derives the
// light's intensity and color from that value. Hosts connect the controller to
// their scene through the LightSink and OrientationSink interfaces.
package lighting

import (
	"github.com/Faultbox/sunlight/pkg/math"
)

// Reference orientations in degrees.
const (
	NoonDegrees     = 0.0
	SunriseDegrees  = 90.0
	MidnightDegrees = 180.0
)

// SunDirection returns the light's forward vector for an orientation around
// the X axis. At 0 degrees the light points along +Z; rotation follows the
// right-hand rule, so 90 degrees points along -Y.
func SunDirection(orientationDegrees float64) math.Vec3 {
	q := math.QuatFromAxisAngle(math.AxisX, math.Radians(orientationDegrees))
	return q.Rotate(math.AxisZ).Normalize()
}
