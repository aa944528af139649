// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import "fmt"

// Quat is a quaternion representing a 3D rotation, with the vector part in
// X, Y, Z and the scalar part in W. The constructors produce unit
// quaternions, but the fields are free to set directly and the norm is
// never enforced.
type Quat struct {
	X float32 `json:"x" toml:"x"`
	Y float32 `json:"y" toml:"y"`
	Z float32 `json:"z" toml:"z"`
	W float32 `json:"w" toml:"w"`
}

// NewQuat returns a new [Quat] with the given x, y, z and w components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion (0, 0, 0, 1),
// representing no rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatAxisAngle returns the quaternion rotating by angle radians around the
// given axis, counter-clockwise when viewed along the axis direction.
// The axis is normalized first; a zero-length axis yields NaN components.
func QuatAxisAngle(axis Vector3, angle float32) Quat {
	axis.SetNormal()
	s := Sin(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: Cos(angle / 2)}
}

// QuatFromEulerRadiansZYX returns the quaternion applying the given Euler
// angles, in radians, around the Z, then Y, then X axis, in that order.
func QuatFromEulerRadiansZYX(euler Vector3) Quat {
	cx := Cos(euler.X / 2)
	sx := Sin(euler.X / 2)
	cy := Cos(euler.Y / 2)
	sy := Sin(euler.Y / 2)
	cz := Cos(euler.Z / 2)
	sz := Sin(euler.Z / 2)

	return Quat{
		X: sx*cy*cz + cx*sy*sz,
		Y: cx*sy*cz - sx*cy*sz,
		Z: cx*cy*sz + sx*sy*cz,
		W: cx*cy*cz - sx*sy*sz,
	}
}

// QuatFromEulerAnglesZYX is [QuatFromEulerRadiansZYX] with the angles
// given in degrees.
func QuatFromEulerAnglesZYX(euler Vector3) Quat {
	return QuatFromEulerRadiansZYX(euler.MulScalar(DegToRadFactor))
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// ToEulerRadiansZYX returns the Euler angles, in radians, that
// [QuatFromEulerRadiansZYX] would turn into this quaternion.
// At the gimbal-lock poles (pitch near ±Pi/2), floating error can push the
// Asin argument outside [-1, 1], yielding a NaN pitch.
func (q Quat) ToEulerRadiansZYX() Vector3 {
	return Vector3{
		X: Atan2(2*(q.W*q.X-q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)),
		Y: Asin(2 * (q.W*q.Y + q.X*q.Z)),
		Z: Atan2(2*(q.W*q.Z-q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
	}
}

// ToEulerAnglesZYX is [ToEulerRadiansZYX] with the angles returned in degrees.
func (q Quat) ToEulerAnglesZYX() Vector3 {
	return q.ToEulerRadiansZYX().MulScalar(RadToDegFactor)
}

// Right returns the rotated basis vector (1, 0, 0), using the closed form
// (no trig calls). Assumes a unit quaternion.
func (q Quat) Right() Vector3 {
	return Vector3{
		1 - 2*(q.Y*q.Y+q.Z*q.Z),
		2 * (q.X*q.Y + q.Z*q.W),
		2 * (q.X*q.Z - q.Y*q.W),
	}
}

// Up returns the rotated basis vector (0, 1, 0), using the closed form
// (no trig calls). Assumes a unit quaternion.
func (q Quat) Up() Vector3 {
	return Vector3{
		2 * (q.X*q.Y - q.Z*q.W),
		1 - 2*(q.X*q.X+q.Z*q.Z),
		2 * (q.Y*q.Z + q.X*q.W),
	}
}

// Forward returns the rotated basis vector (0, 0, 1), using the closed form
// (no trig calls). Assumes a unit quaternion.
func (q Quat) Forward() Vector3 {
	return Vector3{
		2 * (q.X*q.Z + q.Y*q.W),
		2 * (q.Y*q.Z - q.X*q.W),
		1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// Mul returns the Hamilton product of this quaternion with the other one.
// Quaternion multiplication is not commutative; the product composes
// rotations right to left, so q.Mul(p).MulVector3(v) applies p first,
// then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		Z: q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulVector3 returns the given vector rotated by this quaternion, using the
// closed form equivalent of the sandwich product q * v * q^-1.
// Assumes a unit quaternion.
func (q Quat) MulVector3(v Vector3) Vector3 {
	qv := Vec3(q.X, q.Y, q.Z)
	t := qv.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

// Negate returns the quaternion with the vector part negated (the
// conjugate), which for a unit quaternion is the inverse rotation.
func (q Quat) Negate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}
