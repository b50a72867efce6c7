package fpscam

import "math"

// Default tuning values
const (
	DefaultSensitivity = 0.0002
	DefaultMaxDelta    = math.Pi / 2 // per tick, for both pitch and yaw
	DefaultSpeed       = 1.0
)

// Options configures a Controller. Values are used as given: nothing is
// validated, so negative or non-finite numbers show up directly as motion.
// The zero value is not a usable configuration; build on DefaultOptions.
type Options struct {
	EnableFlight  bool       `yaml:"enableFlight"`
	EnablePhysics bool       `yaml:"enablePhysics"`
	Position      [3]float32 `yaml:"position,flow"`
	RotationX     float32    `yaml:"rotationX"`
	RotationY     float32    `yaml:"rotationY"`
	RotationZ     float32    `yaml:"rotationZ"`

	// Mouse sensitivity scale applied to pointer delta per second
	Sensitivity float64 `yaml:"sensitivity"`
	// Largest pitch/yaw change applied in a single tick
	MaxPitchDelta float32 `yaml:"maxPitchDelta"`
	MaxYawDelta   float32 `yaml:"maxYawDelta"`
	// Distance moved per tick for each held movement key
	Speed float32 `yaml:"speed"`

	// MinFrameTime raises the frame time used for mouse look to at least this
	// many seconds. Zero keeps the raw frame time, so a zero-length frame
	// produces non-finite rotation deltas.
	MinFrameTime float64 `yaml:"minFrameTime"`
}

// DefaultOptions returns flight enabled, physics disabled, origin position and
// the stock sensitivity, rotation clamp and speed
func DefaultOptions() Options {
	return Options{
		EnableFlight:  true,
		EnablePhysics: false,
		Sensitivity:   DefaultSensitivity,
		MaxPitchDelta: DefaultMaxDelta,
		MaxYawDelta:   DefaultMaxDelta,
		Speed:         DefaultSpeed,
	}
}
