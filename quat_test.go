// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	assert.Equal(t, Quat{0, 0, 0, 1}, q)

	for _, v := range []Vector3{Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1), Vec3(1, 2, 3), Vec3(-0.5, 0.25, 8)} {
		assert.Equal(t, v, q.MulVector3(v))
	}

	assert.Equal(t, Vec3(1, 0, 0), q.Right())
	assert.Equal(t, Vec3(0, 1, 0), q.Up())
	assert.Equal(t, Vec3(0, 0, 1), q.Forward())
}

func TestQuatAxisAngle(t *testing.T) {
	// positive angle is counter-clockwise viewed along the axis:
	// a quarter turn about +z takes +x to +y
	q := QuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), q.MulVector3(Vec3(1, 0, 0)))
	tolAssertEqualVector3(t, standardTol, Vec3(-1, 0, 0), q.MulVector3(Vec3(0, 1, 0)))

	// the axis need not be unit length going in
	q2 := QuatAxisAngle(Vec3(0, 0, 10), Pi/2)
	tolAssertEqualVector3(t, standardTol, q.MulVector3(Vec3(1, 2, 3)), q2.MulVector3(Vec3(1, 2, 3)))

	// a zero-length axis is not guarded: IEEE garbage out
	qz := QuatAxisAngle(Vector3Zero(), Pi/2)
	assert.True(t, IsNaN(qz.X))
	assert.True(t, IsNaN(qz.Y))
	assert.True(t, IsNaN(qz.Z))
}

func TestQuatBasis(t *testing.T) {
	q := QuatAxisAngle(Vec3(1, 2, 3), 0.7)
	tolAssertEqualVector3(t, standardTol, q.MulVector3(Vec3(1, 0, 0)), q.Right())
	tolAssertEqualVector3(t, standardTol, q.MulVector3(Vec3(0, 1, 0)), q.Up())
	tolAssertEqualVector3(t, standardTol, q.MulVector3(Vec3(0, 0, 1)), q.Forward())
}

func TestQuatMul(t *testing.T) {
	a := QuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	b := QuatAxisAngle(Vec3(1, 0, 0), Pi/2)

	// Hamilton product is not commutative
	ab := a.Mul(b)
	ba := b.Mul(a)
	assert.NotEqual(t, ab, ba)

	// a.Mul(b) applies b first, then a
	v := Vec3(0, 1, 0)
	tolAssertEqualVector3(t, standardTol, a.MulVector3(b.MulVector3(v)), ab.MulVector3(v))
	tolAssertEqualVector3(t, standardTol, b.MulVector3(a.MulVector3(v)), ba.MulVector3(v))

	// identity is the neutral element
	assert.Equal(t, a, a.Mul(QuatIdentity()))
	assert.Equal(t, a, QuatIdentity().Mul(a))
}

func TestQuatNegate(t *testing.T) {
	q := QuatAxisAngle(Vec3(1, -2, 0.5), 1.2)
	assert.Equal(t, Quat{-q.X, -q.Y, -q.Z, q.W}, q.Negate())

	// the conjugate of a unit quaternion is its inverse rotation
	v := Vec3(3, -1, 2)
	tolAssertEqualVector3(t, standardTol, v, q.Negate().MulVector3(q.MulVector3(v)))
	tolAssertEqualVector3(t, standardTol, v, q.MulVector3(q.Negate().MulVector3(v)))
}

func TestQuatEuler(t *testing.T) {
	// single-axis rotations match axis-angle
	for _, tc := range []struct {
		euler Vector3
		axis  Vector3
	}{
		{Vec3(0.6, 0, 0), Vec3(1, 0, 0)},
		{Vec3(0, 0.6, 0), Vec3(0, 1, 0)},
		{Vec3(0, 0, 0.6), Vec3(0, 0, 1)},
	} {
		q := QuatFromEulerRadiansZYX(tc.euler)
		qa := QuatAxisAngle(tc.axis, 0.6)
		tolAssertEqualVector4(t, standardTol, Vec4(qa.X, qa.Y, qa.Z, qa.W), Vec4(q.X, q.Y, q.Z, q.W))
	}

	// the composite applies Z first, then Y, then X
	e := Vec3(0.3, 0.5, -1.2)
	q := QuatFromEulerRadiansZYX(e)
	composed := QuatAxisAngle(Vec3(1, 0, 0), e.X).
		Mul(QuatAxisAngle(Vec3(0, 1, 0), e.Y)).
		Mul(QuatAxisAngle(Vec3(0, 0, 1), e.Z))
	tolAssertEqualVector4(t, standardTol, Vec4(composed.X, composed.Y, composed.Z, composed.W), Vec4(q.X, q.Y, q.Z, q.W))
}

func TestQuatEulerRoundTrip(t *testing.T) {
	// away from the gimbal-lock poles the conversion round-trips
	angles := []Vector3{
		Vec3(0, 0, 0),
		Vec3(0.3, 0.5, -1.2),
		Vec3(-1.1, 0.9, 2.8),
		Vec3(2.0, -1.0, 0.1),
	}
	for _, e := range angles {
		out := QuatFromEulerRadiansZYX(e).ToEulerRadiansZYX()
		tolAssertEqualVector3(t, 1.0e-5, e, out)
	}

	ed := Vec3(10, 20, -30)
	tolAssertEqualVector3(t, 1.0e-3, ed, QuatFromEulerAnglesZYX(ed).ToEulerAnglesZYX())
}
