// Package polar holds the angle and radius math shared by everything that lives
// on the disc world. All functions are pure.
package polar

import "math"

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// HitboxScale converts a physical half-width over radius into an angular half-width.
const HitboxScale = math.Pi / 6

// MinRadius is the smallest radius used as a divisor.
// Anything closer to the center is treated as sitting on it.
const MinRadius = 1e-6

// WrapAngle normalizes an angle into [0, 2π).
// Non-finite input wraps to 0.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative number can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDelta returns the signed shortest rotation from one angle to another, in (-π, π].
func AngleDelta(from, to float64) float64 {
	d := WrapAngle(to - from)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// AngleDistance returns the unsigned shortest distance between two angles, in [0, π].
func AngleDistance(a, b float64) float64 {
	return math.Abs(AngleDelta(a, b))
}

// ToCartesian converts a polar position to x, y relative to the world center.
func ToCartesian(angle, radius float64) (x, y float64) {
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

// FromCartesian converts x, y relative to the world center into angle and radius.
func FromCartesian(x, y float64) (angle, radius float64) {
	return WrapAngle(math.Atan2(y, x)), math.Hypot(x, y)
}

// ScaleWidth converts a physical half-width (pixels) at a radius into an angular half-width.
func ScaleWidth(width, radius float64) float64 {
	return width / SafeRadius(radius) * HitboxScale
}

// UnscaleWidth converts an angular half-width at a radius back into pixels.
func UnscaleWidth(angle, radius float64) float64 {
	return angle * SafeRadius(radius) / HitboxScale
}

// SafeRadius returns radius, or MinRadius when radius is at or near the center.
func SafeRadius(radius float64) float64 {
	if radius < MinRadius {
		return MinRadius
	}
	return radius
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
