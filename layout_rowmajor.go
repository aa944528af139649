// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build matrowmajor

package gfxmath

// cr returns the flat [Matrix4] storage offset of the given column and row.
// Storage is row-major (matrowmajor tag).
func cr(col, row int) int {
	return row*4 + col
}
