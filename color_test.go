// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0, 1}, Black)
	assert.Equal(t, Color{1, 1, 1, 1}, White)
	assert.Equal(t, Color{1, 0, 0, 1}, Red)
	assert.Equal(t, Color{0, 1, 0, 1}, Lime)
	assert.Equal(t, Color{0, 0, 1, 1}, Blue)
	assert.Equal(t, Color{0, 0.5, 0, 1}, Green)
	assert.Equal(t, Color{0, 0, 0.5, 1}, Navy)
	assert.Equal(t, Color{1, 0, 1, 1}, Fuchsia)
}

func TestColorFromHexRGB(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 1}, ColorFromHexRGB(0xFF0000))
	assert.Equal(t, Color{0, 1, 0, 1}, ColorFromHexRGB(0x00FF00))
	assert.Equal(t, Color{0, 0, 1, 1}, ColorFromHexRGB(0x0000FF))
	assert.Equal(t, Color{1, 1, 1, 1}, ColorFromHexRGB(0xFFFFFF))

	// the most significant byte is ignored
	assert.Equal(t, ColorFromHexRGB(0xFF0000), ColorFromHexRGB(0xAAFF0000))
}

func TestColorFromHexBGR(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 1}, ColorFromHexBGR(0x0000FF))
	assert.Equal(t, Color{0, 1, 0, 1}, ColorFromHexBGR(0x00FF00))
	assert.Equal(t, Color{0, 0, 1, 1}, ColorFromHexBGR(0xFF0000))
	assert.Equal(t, Color{1, 1, 1, 1}, ColorFromHexBGR(0xFFFFFF))
}

func TestColorFromHexRGBA(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 0}, ColorFromHexRGBA(0xFF000000))
	assert.Equal(t, Color{0, 1, 0, 0}, ColorFromHexRGBA(0x00FF0000))
	assert.Equal(t, Color{0, 0, 1, 0}, ColorFromHexRGBA(0x0000FF00))
	assert.Equal(t, Color{0, 0, 0, 1}, ColorFromHexRGBA(0x000000FF))
	assert.Equal(t, Color{1, 1, 1, 1}, ColorFromHexRGBA(0xFFFFFFFF))
}

func TestColorFromHexARGB(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 0}, ColorFromHexARGB(0x00FF0000))
	assert.Equal(t, Color{0, 1, 0, 0}, ColorFromHexARGB(0x0000FF00))
	assert.Equal(t, Color{0, 0, 1, 0}, ColorFromHexARGB(0x000000FF))
	assert.Equal(t, Color{0, 0, 0, 1}, ColorFromHexARGB(0xFF000000))
	assert.Equal(t, Color{1, 1, 1, 1}, ColorFromHexARGB(0xFFFFFFFF))
}

func TestColorOperators(t *testing.T) {
	a := NewColor(1, 0.2, 0.3, 0.5)
	b := NewColor(0.3, 0.4, 0.5, 0.5)

	assert.Equal(t, Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}, a.Add(b))
	assert.Equal(t, Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}, a.Sub(b))

	// channels are not clamped, including alpha
	over := White.Add(White)
	assert.Equal(t, Color{2, 2, 2, 2}, over)
	under := Black.Sub(White)
	assert.Equal(t, Color{-1, -1, -1, 0}, under)

	c := a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)

	c = a
	c.SetSub(b)
	assert.Equal(t, a.Sub(b), c)
}

func TestColorArrays(t *testing.T) {
	assert.Equal(t, Color{0.1, 0.2, 0.3, 1}, ColorFromArray3([3]float32{0.1, 0.2, 0.3}))
	assert.Equal(t, Color{0.1, 0.2, 0.3, 0.4}, ColorFromArray4([4]float32{0.1, 0.2, 0.3, 0.4}))
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, NewColor(0.1, 0.2, 0.3, 0.4).ToArray3())
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, NewColor(0.1, 0.2, 0.3, 0.4).ToArray4())
}
