// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{7, 7, 7}, Vector3Scalar(7))
	assert.Equal(t, Vector3{}, Vector3Zero())
	assert.Equal(t, Vector3{1, 1, 1}, Vector3One())
	assert.Equal(t, Vector3{5, 10, -2}, Vector3FromVector2(Vec2(5, 10), -2))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromArray([3]float32{1, 2, 3}))
	assert.Equal(t, [3]float32{1, 2, 3}, Vec3(1, 2, 3).ToArray())

	buf := make([]float32, 5)
	Vec3(1, 2, 3).ToSlice(buf, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 0}, buf)
	var v Vector3
	v.FromSlice(buf, 1)
	assert.Equal(t, Vec3(1, 2, 3), v)
}

func TestVector3Operators(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(3, 4, 5)

	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())

	assert.Equal(t, float32(14), a.LengthSquared())
	assert.Equal(t, Sqrt(14), a.Length())
	assert.Equal(t, float32(26), a.Dot(b))

	assert.Equal(t, Vec3(4, 6, 8), a.Add(b))
	assert.Equal(t, Vec3(-2, -2, -2), a.Sub(b))
	assert.Equal(t, Vec3(3, 8, 15), a.Mul(b))
	assert.Equal(t, Vec3(1.0/3.0, 0.5, 3.0/5.0), a.Div(b))

	// scalar multiplication is commutative; scalar division is not:
	// ScalarDiv(k) is k divided by each component
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vec3(2, 1, 0.5), Vec3(1, 2, 4).ScalarDiv(2))

	c := a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)

	c = a
	c.SetSub(b)
	assert.Equal(t, a.Sub(b), c)

	c = a
	c.SetMulScalar(2)
	assert.Equal(t, a.MulScalar(2), c)

	c = a
	c.SetDivScalar(2)
	assert.Equal(t, a.DivScalar(2), c)
}

func TestVector3Cross(t *testing.T) {
	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	z := Vec3(0, 0, 1)

	// right-handed basis
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Negate(), y.Cross(x))

	a := Vec3(1, 2, 3)
	b := Vec3(3, 4, 5)
	assert.Equal(t, Vec3(2*5-3*4, 3*3-1*5, 1*4-2*3), a.Cross(b))
	assert.Equal(t, Vector3Zero(), a.Cross(a))
}

func TestVector3Normal(t *testing.T) {
	a := Vec3(1, 2, 3)
	assert.Equal(t, a.DivScalar(a.Length()), a.Normal())
	assert.InDelta(t, 1, float64(a.Normal().Length()), standardTol)

	n := a
	n.SetNormal()
	assert.Equal(t, a.Normal(), n)

	z := Vector3Zero().Normal()
	assert.True(t, IsNaN(z.X))
	assert.True(t, IsNaN(z.Y))
	assert.True(t, IsNaN(z.Z))
}

func TestVector3Lerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(2, 4, 6)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3(1, 2, 3), a.Lerp(b, 0.5))
}
