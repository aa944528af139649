// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build matptr

package gfxmath

// Pointer returns a pointer to the first element of the flat storage, for
// passing to native graphics APIs expecting 16 contiguous floats.
// Only available with the matptr build tag.
func (m *Matrix4) Pointer() *float32 {
	return &m[0]
}
