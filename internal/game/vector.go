package game

import "math"

// Vec3 is a position or direction in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Vec converts a wire-format [x, y, z] triple.
func Vec(a [3]float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) DistanceTo(o Vec3) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// minDirectionLength is the threshold below which a direction vector is
// treated as zero and rejected, so velocity integration never divides by a
// vanishing magnitude.
const minDirectionLength = 1e-6

// Normalize returns the unit vector and true, or the zero value and false
// when the input length is numerically indistinguishable from zero.
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Length()
	if l <= minDirectionLength {
		return Vec3{}, false
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, true
}
