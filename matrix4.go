// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import "fmt"

// Matrix4 is a 4x4 matrix stored as 16 contiguous floats, column-major by
// default (see [cr] and the matrowmajor build tag). The flat layout is the
// interchange format for graphics APIs expecting float buffers.
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromArray returns a new [Matrix4] copying the given flat array
// directly into storage, no reordering.
func Matrix4FromArray(array [16]float32) Matrix4 {
	return Matrix4(array)
}

// Matrix4FromRows returns a new [Matrix4] from the given nested rows
// (rows[row][col]), transposing them into the internal flat layout.
func Matrix4FromRows(rows [4][4]float32) Matrix4 {
	var res Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			res[cr(c, r)] = rows[r][c]
		}
	}
	return res
}

// Matrix4Translate returns the translation matrix for the given offset.
func Matrix4Translate(t Vector3) Matrix4 {
	res := Identity4()
	res[cr(3, 0)] = t.X
	res[cr(3, 1)] = t.Y
	res[cr(3, 2)] = t.Z
	return res
}

// Matrix4Rotate returns the rotation matrix for the given quaternion,
// with the rotated basis vectors as the columns of the 3x3 block.
func Matrix4Rotate(q Quat) Matrix4 {
	res := Identity4()

	right := q.Right()
	up := q.Up()
	fwd := q.Forward()

	res[cr(0, 0)] = right.X
	res[cr(0, 1)] = right.Y
	res[cr(0, 2)] = right.Z

	res[cr(1, 0)] = up.X
	res[cr(1, 1)] = up.Y
	res[cr(1, 2)] = up.Z

	res[cr(2, 0)] = fwd.X
	res[cr(2, 1)] = fwd.Y
	res[cr(2, 2)] = fwd.Z

	return res
}

// Matrix4Scale returns the scale matrix for the given per-axis factors.
func Matrix4Scale(s Vector3) Matrix4 {
	res := Identity4()
	res[cr(0, 0)] = s.X
	res[cr(1, 1)] = s.Y
	res[cr(2, 2)] = s.Z
	return res
}

// Matrix4LocalToWorld returns the local-to-world/object-to-world matrix for
// the given translation, rotation and scale. A vector multiplied by it is
// scaled by s, rotated by r, then translated by t, in that order.
func Matrix4LocalToWorld(t Vector3, r Quat, s Vector3) Matrix4 {
	return Matrix4Translate(t).Mul(Matrix4Rotate(r)).Mul(Matrix4Scale(s))
}

// Matrix4WorldToLocal returns the world-to-local/world-to-object matrix for
// the given translation, rotation and scale, the algebraic inverse of
// [Matrix4LocalToWorld] for non-zero scale components. Zero scale
// components yield Inf or NaN values.
func Matrix4WorldToLocal(t Vector3, r Quat, s Vector3) Matrix4 {
	return Matrix4Scale(s.ScalarDiv(1)).Mul(Matrix4Rotate(r.Negate())).Mul(Matrix4Translate(t.Negate()))
}

// Get returns the value indexed by column and row.
// Out-of-range indices panic.
func (m *Matrix4) Get(col, row int) float32 {
	return m[cr(col, row)]
}

// Set sets the value indexed by column and row.
// Out-of-range indices panic.
func (m *Matrix4) Set(col, row int, val float32) {
	m[cr(col, row)] = val
}

func (m Matrix4) String() string {
	s := ""
	for r := 0; r < 4; r++ {
		s += fmt.Sprintf("(%v, %v, %v, %v)\n", m[cr(0, r)], m[cr(1, r)], m[cr(2, r)], m[cr(3, r)])
	}
	return s
}

// ToArray returns the flat storage as a fixed-size array, direct copy.
func (m Matrix4) ToArray() [16]float32 {
	return [16]float32(m)
}

// FromSlice sets the flat storage from the given slice, starting at offset.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToSlice copies the flat storage to the given slice, starting at offset.
func (m Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:offset+16], m[:])
}

// Transposed returns a copy of this matrix with rows and columns swapped.
func (m Matrix4) Transposed() Matrix4 {
	var res Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			res[cr(r, c)] = m[cr(c, r)]
		}
	}
	return res
}

// Mul returns the standard row-by-column 4x4 product of this matrix with
// the other one.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var res Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			res[cr(c, r)] = m[cr(0, r)]*other[cr(c, 0)] +
				m[cr(1, r)]*other[cr(c, 1)] +
				m[cr(2, r)]*other[cr(c, 2)] +
				m[cr(3, r)]*other[cr(c, 3)]
		}
	}
	return res
}

// MulVector4 returns the given vector multiplied by this matrix, using the
// full 4-component homogeneous transform.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return v.MulMatrix4(&m)
}

// MulVector3 returns the given vector multiplied by the 3x3 block of this
// matrix only: no translation, no perspective divide. This is the right
// transform for direction vectors; use [Matrix4.MulVector4] with W = 1
// for points.
func (m Matrix4) MulVector3(v Vector3) Vector3 {
	return v.MulMatrix4(&m)
}

// Projections. Each builder comes in a Vulkan variant mapping depth to
// [0, 1] and an OpenGL variant mapping depth to [-1, 1], with a matching
// closed-form inverse builder mapping that range back to view space.
// The forward and inverse forms are independently derived, not generic
// matrix inverses of each other; see the package tests for the exact
// round-trip conditions.

// OrthographicVulkan returns an orthographic projection matrix for the
// given frustum planes, with z mapped to [0, 1] as expected by Vulkan.
func OrthographicVulkan(l, r, b, t, n, f float32) Matrix4 {
	res := Identity4()

	res[cr(0, 0)] = 2 * (r - l)
	res[cr(3, 0)] = (-l - r) / (r - l)

	res[cr(1, 1)] = 2 * (t - b)
	res[cr(3, 1)] = (-b - t) / (t - b)

	res[cr(2, 2)] = 1 / (f - n)
	res[cr(3, 2)] = -n / (f - n)

	return res
}

// InverseOrthographicVulkan returns the matrix mapping [OrthographicVulkan]
// clip space back to view space.
func InverseOrthographicVulkan(l, r, b, t, n, f float32) Matrix4 {
	res := Identity4()

	res[cr(0, 0)] = (r - l) / 2
	res[cr(3, 0)] = (r + l) / 2

	res[cr(1, 1)] = (t - b) / 2
	res[cr(3, 1)] = (t + b) / 2

	res[cr(2, 2)] = f - n
	res[cr(3, 2)] = n

	return res
}

// OrthographicOpenGL returns an orthographic projection matrix for the
// given frustum planes, with z mapped to [-1, 1] as expected by OpenGL.
func OrthographicOpenGL(l, r, b, t, n, f float32) Matrix4 {
	res := Identity4()

	res[cr(0, 0)] = 2 * (r - l)
	res[cr(3, 0)] = (-l - r) / (r - l)

	res[cr(1, 1)] = 2 * (t - b)
	res[cr(3, 1)] = (-b - t) / (t - b)

	res[cr(2, 2)] = 2 / (f - n)
	res[cr(3, 2)] = (-n - f) / (f - n)

	return res
}

// InverseOrthographicOpenGL returns the matrix mapping [OrthographicOpenGL]
// clip space back to view space.
func InverseOrthographicOpenGL(l, r, b, t, n, f float32) Matrix4 {
	res := Identity4()

	res[cr(0, 0)] = (r - l) / 2
	res[cr(3, 0)] = (r + l) / 2

	res[cr(1, 1)] = (t - b) / 2
	res[cr(3, 1)] = (t + b) / 2

	res[cr(2, 2)] = (f - n) / 2
	res[cr(3, 2)] = (f + n) / 2

	return res
}

// PerspectiveVulkan returns a perspective projection matrix for the given
// vertical field of view (radians), near and far planes, and aspect ratio,
// with z mapped to [0, 1] as expected by Vulkan.
func PerspectiveVulkan(fovRad, near, far, aspect float32) Matrix4 {
	res := Identity4()
	thfov := Tan(fovRad / 2)

	res[cr(0, 0)] = 1 / (thfov * aspect)
	res[cr(1, 1)] = 1 / thfov

	res[cr(2, 2)] = far / (far - near)
	res[cr(3, 2)] = (-far * near) / (far - near)

	res[cr(2, 3)] = 1
	res[cr(3, 3)] = 0

	return res
}

// InversePerspectiveVulkan returns the matrix mapping [PerspectiveVulkan]
// clip space back to view space (before the perspective divide).
func InversePerspectiveVulkan(fovRad, near, far, aspect float32) Matrix4 {
	res := Identity4()
	thfov := Tan(fovRad / 2)

	res[cr(0, 0)] = thfov * aspect
	res[cr(1, 1)] = thfov

	res[cr(2, 2)] = 0
	res[cr(3, 2)] = 1

	res[cr(2, 3)] = (near - far) / (far * near)
	res[cr(3, 3)] = 1 / near

	return res
}

// PerspectiveOpenGL returns a perspective projection matrix for the given
// vertical field of view (radians), near and far planes, and aspect ratio,
// with z mapped to [-1, 1] as expected by OpenGL.
func PerspectiveOpenGL(fovRad, near, far, aspect float32) Matrix4 {
	res := Identity4()
	thfov := Tan(fovRad / 2)

	res[cr(0, 0)] = 1 / (thfov * aspect)
	res[cr(1, 1)] = 1 / thfov

	res[cr(2, 2)] = (far + near) / (far - near)
	res[cr(3, 2)] = (-2 * far * near) / (far - near)

	res[cr(2, 3)] = 1
	res[cr(3, 3)] = 0

	return res
}

// InversePerspectiveOpenGL returns the matrix mapping [PerspectiveOpenGL]
// clip space back to view space (before the perspective divide).
func InversePerspectiveOpenGL(fovRad, near, far, aspect float32) Matrix4 {
	res := Identity4()
	thfov := Tan(fovRad / 2)

	res[cr(0, 0)] = thfov * aspect
	res[cr(1, 1)] = thfov

	res[cr(2, 2)] = 0
	res[cr(3, 2)] = 1

	res[cr(2, 3)] = (near - far) / (2 * far * near)
	res[cr(3, 3)] = (far + near) / (2 * far * near)

	return res
}
