package lighting

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/sunlight/pkg/math"
)

// LightSink receives the appearance written by DayCycle.
type LightSink interface {
	SetIntensity(intensity float64)
	SetColor(c colorful.Color)
}

// OrientationSink receives the sun's rotation around the X axis in degrees.
type OrientationSink interface {
	SetRotationX(degrees float64)
}

// DirectionalLight is a plain LightSink that records the last written values.
type DirectionalLight struct {
	Intensity float64
	Color     colorful.Color
}

// SetIntensity implements LightSink.
func (l *DirectionalLight) SetIntensity(intensity float64) {
	l.Intensity = intensity
}

// SetColor implements LightSink.
func (l *DirectionalLight) SetColor(c colorful.Color) {
	l.Color = c
}

// Transform is an OrientationSink backed by a quaternion rotation.
type Transform struct {
	rotation math.Quat
}

// NewTransform returns a transform with no rotation.
func NewTransform() *Transform {
	return &Transform{rotation: math.QuatIdentity()}
}

// SetRotationX implements OrientationSink. Any previous rotation is replaced.
func (t *Transform) SetRotationX(degrees float64) {
	t.rotation = math.QuatFromAxisAngle(math.AxisX, math.Radians(degrees)).Normalize()
}

// EulerX reads the X rotation back in [0,360).
func (t *Transform) EulerX() float64 {
	return t.rotation.AngleX()
}

// Forward returns the rotated +Z axis.
func (t *Transform) Forward() math.Vec3 {
	return t.rotation.Rotate(math.AxisZ)
}
