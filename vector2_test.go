// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{}, Vector2Zero())
	assert.Equal(t, Vector2{1, 1}, Vector2One())
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, Vector2{2, 4}, Vector2FromArray([2]float32{2, 4}))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	assert.Equal(t, image.Pt(8, 8), v.ToPoint())
	assert.Equal(t, [2]float32{8.12, 8.12}, v.ToArray())
	assert.Equal(t, fixed.P(3, -2), Vec2(3, -2).ToFixed())
}

func TestVector2Operators(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, 4)

	assert.Equal(t, Vec2(-1, -2), a.Negate())

	assert.Equal(t, float32(5), a.LengthSquared())
	assert.Equal(t, Sqrt(5), a.Length())
	assert.Equal(t, float32(11), a.Dot(b))

	assert.Equal(t, Vec2(4, 6), a.Add(b))
	assert.Equal(t, Vec2(-2, -2), a.Sub(b))
	assert.Equal(t, Vec2(3, 8), a.Mul(b))
	assert.Equal(t, Vec2(1.0/3.0, 0.5), a.Div(b))

	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, Vec2(2, 1), a.ScalarDiv(2))

	c := a
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

func TestVector2Normal(t *testing.T) {
	a := Vec2(3, 4)
	assert.Equal(t, a.DivScalar(a.Length()), a.Normal())
	assert.InDelta(t, 1, float64(a.Normal().Length()), standardTol)

	n := a
	n.SetNormal()
	assert.Equal(t, a.Normal(), n)

	// normalizing the zero vector is not guarded: IEEE garbage out
	z := Vector2Zero().Normal()
	assert.True(t, IsNaN(z.X))
	assert.True(t, IsNaN(z.Y))
}
