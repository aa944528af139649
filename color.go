// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import "fmt"

// Color is an RGBA color with each channel nominally in [0, 1].
// The range is not enforced: the hex constructors always land inside it,
// but direct construction and arithmetic can go outside, unclamped.
type Color struct {
	R float32 `json:"r" toml:"r"`
	G float32 `json:"g" toml:"g"`
	B float32 `json:"b" toml:"b"`
	A float32 `json:"a" toml:"a"`
}

// The 16 basic CSS colors, for quick prototyping.
// See https://www.w3.org/wiki/CSS/Properties/color/keywords
var (
	Black   = Color{0, 0, 0, 1}
	Silver  = Color{0.75, 0.75, 0.75, 1}
	Gray    = Color{0.5, 0.5, 0.5, 1}
	White   = Color{1, 1, 1, 1}
	Maroon  = Color{0.5, 0, 0, 1}
	Red     = Color{1, 0, 0, 1}
	Purple  = Color{0.5, 0, 0.5, 1}
	Fuchsia = Color{1, 0, 1, 1}
	Green   = Color{0, 0.5, 0, 1}
	Lime    = Color{0, 1, 0, 1}
	Olive   = Color{0.5, 0.5, 0, 1}
	Yellow  = Color{1, 1, 0, 1}
	Navy    = Color{0, 0, 0.5, 1}
	Blue    = Color{0, 0, 1, 1}
	Teal    = Color{0, 0.5, 0.5, 1}
	Aqua    = Color{0, 1, 1, 1}
)

// NewColor returns a new [Color] with the given r, g, b and a channels.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHexRGB returns a new [Color] from a hex value in 0xRRGGBB
// format. The most significant byte is discarded and the alpha channel is
// always set to 1.
func ColorFromHexRGB(hex uint32) Color {
	r := float32((hex>>16)&0xFF) / 255
	g := float32((hex>>8)&0xFF) / 255
	b := float32(hex&0xFF) / 255
	return Color{R: r, G: g, B: b, A: 1}
}

// ColorFromHexBGR returns a new [Color] from a hex value in 0xBBGGRR
// format. The most significant byte is discarded and the alpha channel is
// always set to 1.
func ColorFromHexBGR(hex uint32) Color {
	b := float32((hex>>16)&0xFF) / 255
	g := float32((hex>>8)&0xFF) / 255
	r := float32(hex&0xFF) / 255
	return Color{R: r, G: g, B: b, A: 1}
}

// ColorFromHexRGBA returns a new [Color] from a hex value in 0xRRGGBBAA
// format.
func ColorFromHexRGBA(hex uint32) Color {
	r := float32((hex>>24)&0xFF) / 255
	g := float32((hex>>16)&0xFF) / 255
	b := float32((hex>>8)&0xFF) / 255
	a := float32(hex&0xFF) / 255
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHexARGB returns a new [Color] from a hex value in 0xAARRGGBB
// format.
func ColorFromHexARGB(hex uint32) Color {
	a := float32((hex>>24)&0xFF) / 255
	r := float32((hex>>16)&0xFF) / 255
	g := float32((hex>>8)&0xFF) / 255
	b := float32(hex&0xFF) / 255
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromArray3 returns a new [Color] from the given array, with the
// alpha channel defaulted to 1.
func ColorFromArray3(array [3]float32) Color {
	return Color{R: array[0], G: array[1], B: array[2], A: 1}
}

// ColorFromArray4 returns a new [Color] from the given array.
func ColorFromArray4(array [4]float32) Color {
	return Color{R: array[0], G: array[1], B: array[2], A: array[3]}
}

func (c Color) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// ToArray3 returns the R, G, B channels as a fixed-size array, dropping alpha.
func (c Color) ToArray3() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ToArray4 returns all four channels as a fixed-size array, in R, G, B, A order.
func (c Color) ToArray4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Add adds the other given color to this one, channel-wise including
// alpha, without clamping, and returns the result as a new color.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// SetAdd sets this to addition with the other color (i.e., += or plus-equals).
func (c *Color) SetAdd(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	c.A += other.A
}

// Sub subtracts the other color from this one, channel-wise including
// alpha, without clamping, and returns the result in a new color.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// SetSub sets this to subtraction with the other color (i.e., -= or minus-equals).
func (c *Color) SetSub(other Color) {
	c.R -= other.R
	c.G -= other.G
	c.B -= other.B
	c.A -= other.A
}
