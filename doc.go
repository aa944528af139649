// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfxmath is a float32 vector, quaternion, matrix, and color math
// package for 2D and 3D graphics.
//
// All types are plain value types with exported fields; operations either
// return a new value or mutate the receiver in place through the Set*
// methods. Nothing allocates and nothing validates: every operation is
// total in the IEEE-754 sense, so dividing by zero, normalizing a
// zero-length vector, or hitting a gimbal-lock pole produces NaN or Inf
// components rather than an error.
//
// Matrix4 storage is column-major by default; build with the matrowmajor
// tag for row-major storage. The generated swizzle accessors can be
// excluded with the noswizzle tag.
package gfxmath

//go:generate go run ./cmd/swizzlegen
