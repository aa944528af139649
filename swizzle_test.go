// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noswizzle

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Swizzle(t *testing.T) {
	v := Vec2(1, 2)
	assert.Equal(t, Vec2(2, 1), v.YX())
	assert.Equal(t, Vec2(1, 1), v.XX())
	assert.Equal(t, Vec3(2, 1, 2), v.YXY())
	assert.Equal(t, Vec4(1, 1, 2, 2), v.XXYY())
}

func TestVector3Swizzle(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vec2(3, 1), v.ZX())
	assert.Equal(t, Vec3(3, 1, 2), v.ZXY())
	assert.Equal(t, Vec3(1, 2, 3), v.XYZ())
	assert.Equal(t, Vec4(3, 3, 2, 1), v.ZZYX())
}

func TestVector4Swizzle(t *testing.T) {
	v := Vec4(1, 2, 3, 4)

	// components come back in exactly the named order
	assert.Equal(t, Vec4(4, 3, 2, 1), v.WZYX())
	assert.Equal(t, Vec4(1, 2, 3, 4), v.XYZW())
	assert.Equal(t, Vec3(4, 4, 4), v.WWW())
	assert.Equal(t, Vec2(2, 4), v.YW())
}

func TestColorSwizzle(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 0.4)

	// color swizzles produce vectors, not colors
	assert.Equal(t, Vec3(0.1, 0.2, 0.3), c.RGB())
	assert.Equal(t, Vec4(0.1, 0.2, 0.3, 0.4), c.RGBA())
	assert.Equal(t, Vec4(0.4, 0.1, 0.2, 0.3), c.ARGB())
	assert.Equal(t, Vec2(0.3, 0.2), c.BG())
	assert.Equal(t, Vec3(0.2, 0.2, 0.2), c.GGG())
}
