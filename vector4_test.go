// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector4(t *testing.T) {
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vec4(1, 2, 3, 4))
	assert.Equal(t, Vector4{7, 7, 7, 7}, Vector4Scalar(7))
	assert.Equal(t, Vector4{}, Vector4Zero())
	assert.Equal(t, Vector4{1, 1, 1, 1}, Vector4One())
	assert.Equal(t, Vector4{1, 2, 3, 1}, Vector4FromVector3(Vec3(1, 2, 3), 1))
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vector4FromArray([4]float32{1, 2, 3, 4}))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, Vec4(1, 2, 3, 4).ToArray())
}

func TestVector4Operators(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(3, 4, 5, 6)

	assert.Equal(t, Vector4{-1, -2, -3, -4}, a.Negate())

	assert.Equal(t, float32(30), a.LengthSquared())
	assert.Equal(t, Sqrt(30), a.Length())

	assert.Equal(t, float32(50), a.Dot(b))

	assert.Equal(t, Vector4{4, 6, 8, 10}, a.Add(b))
	assert.Equal(t, Vector4{-2, -2, -2, -2}, a.Sub(b))
	assert.Equal(t, Vector4{3, 8, 15, 24}, a.Mul(b))
	assert.Equal(t, Vector4{1.0 / 3.0, 0.5, 3.0 / 5.0, 4.0 / 6.0}, a.Div(b))

	assert.Equal(t, Vector4{2, 4, 6, 8}, a.MulScalar(2))
	assert.Equal(t, Vector4{0.5, 1, 1.5, 2}, a.DivScalar(2))
	assert.Equal(t, Vector4{2, 1, 2.0 / 3.0, 0.5}, a.ScalarDiv(2))

	c := a
	assert.Equal(t, a.DivScalar(a.Length()), c.Normal())

	c.SetNormal()
	assert.Equal(t, a.DivScalar(a.Length()), c)

	c = a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)

	c = a
	c.SetSub(b)
	assert.Equal(t, a.Sub(b), c)

	c = a
	c.SetMul(b)
	assert.Equal(t, a.Mul(b), c)

	c = a
	c.SetDiv(b)
	assert.Equal(t, a.Div(b), c)

	c = a
	c.SetMulScalar(2)
	assert.Equal(t, a.MulScalar(2), c)

	c = a
	c.SetDivScalar(2)
	assert.Equal(t, a.DivScalar(2), c)
}

func TestVector4PerspDiv(t *testing.T) {
	assert.Equal(t, Vec3(1, 2, 3), Vec4(2, 4, 6, 2).PerspDiv())
}
