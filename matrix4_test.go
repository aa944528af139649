// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if c == r {
				assert.Equal(t, float32(1), id.Get(c, r))
			} else {
				assert.Equal(t, float32(0), id.Get(c, r))
			}
		}
	}

	assert.Equal(t, id, id.Transposed())

	for _, v := range []Vector4{Vec4(1, 2, 3, 4), Vec4(-1, 0, 0.5, 1), Vector4Zero()} {
		assert.Equal(t, v, id.MulVector4(v))
	}
	assert.Equal(t, Vec3(1, 2, 3), id.MulVector3(Vec3(1, 2, 3)))

	assert.Equal(t, id, id.Mul(id))
}

func TestMatrix4GetSet(t *testing.T) {
	var m Matrix4
	m.Set(3, 1, 42)
	assert.Equal(t, float32(42), m.Get(3, 1))

	assert.Panics(t, func() { m.Get(4, 4) })
	assert.Panics(t, func() { m.Set(4, 4, 1) })
}

func TestMatrix4Conversions(t *testing.T) {
	flat := [16]float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	m := Matrix4FromArray(flat)
	assert.Equal(t, flat, m.ToArray())

	// nested rows are transposed into storage: rows[r][c] lands at (c, r)
	rows := [4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	mr := Matrix4FromRows(rows)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, rows[r][c], mr.Get(c, r))
		}
	}

	buf := make([]float32, 18)
	m.ToSlice(buf, 1)
	var m2 Matrix4
	m2.FromSlice(buf, 1)
	assert.Equal(t, m, m2)
}

func TestMatrix4Transposed(t *testing.T) {
	m := Matrix4FromRows([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	mt := m.Transposed()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, m.Get(c, r), mt.Get(r, c))
		}
	}
	assert.Equal(t, m, m.Transposed().Transposed())
}

func TestMatrix4Translate(t *testing.T) {
	m := Matrix4Translate(Vec3(1, 2, 3))
	assert.Equal(t, Vec4(2, 4, 6, 1), m.MulVector4(Vec4(1, 2, 3, 1)))

	// the Vector3 multiply uses the 3x3 block only: translation is ignored
	assert.Equal(t, Vec3(1, 2, 3), m.MulVector3(Vec3(1, 2, 3)))
}

func TestMatrix4Scale(t *testing.T) {
	m := Matrix4Scale(Vec3(2, 3, 4))
	assert.Equal(t, Vec4(2, 6, 12, 1), m.MulVector4(Vec4(1, 2, 3, 1)))
	assert.Equal(t, Vec3(2, 6, 12), m.MulVector3(Vec3(1, 2, 3)))
}

func TestMatrix4Rotate(t *testing.T) {
	q := QuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	m := Matrix4Rotate(q)

	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), m.MulVector3(Vec3(1, 0, 0)))
	tolAssertEqualVector3(t, standardTol, q.MulVector3(Vec3(1, 2, 3)), m.MulVector3(Vec3(1, 2, 3)))

	// basis vectors are the columns of the 3x3 block
	r := q.Right()
	assert.Equal(t, Vec3(r.X, r.Y, r.Z), Vec3(m.Get(0, 0), m.Get(0, 1), m.Get(0, 2)))
}

func TestMatrix4LocalToWorld(t *testing.T) {
	// scale, then rotate, then translate:
	// (1,0,0) scaled by 2 = (2,0,0), translated by (1,0,0) = (3,0,0)
	m := Matrix4LocalToWorld(Vec3(1, 0, 0), QuatIdentity(), Vec3(2, 2, 2))
	assert.Equal(t, Vec4(3, 0, 0, 1), m.MulVector4(Vec4(1, 0, 0, 1)))

	// against the manual composition with a rotation in play
	tv := Vec3(1, 2, 3)
	r := QuatAxisAngle(Vec3(0, 1, 0), 0.7)
	s := Vec3(2, 3, 4)
	m = Matrix4LocalToWorld(tv, r, s)

	p := Vec3(0.5, -1, 2)
	want := r.MulVector3(p.Mul(s)).Add(tv)
	got := m.MulVector4(Vector4FromVector3(p, 1))
	tolAssertEqualVector3(t, standardTol, want, Vec3(got.X, got.Y, got.Z))
}

func TestMatrix4WorldToLocal(t *testing.T) {
	tv := Vec3(1, 2, 3)
	r := QuatAxisAngle(Vec3(0, 0, 1), 0.7)
	s := Vec3(2, 3, 4)

	m := Matrix4WorldToLocal(tv, r, s).Mul(Matrix4LocalToWorld(tv, r, s))
	tolAssertEqualMatrix4(t, 1.0e-5, Identity4(), m)
}

// projection round trips: the orthographic forward builders keep the
// original 2*(r-l) scale path, so inverse*forward is the identity exactly
// at unit frustum extents (r-l = t-b = 1), which is what these use.

func TestOrthographicVulkan(t *testing.T) {
	m := InverseOrthographicVulkan(0, 1, 0, 1, 1, 10).Mul(OrthographicVulkan(0, 1, 0, 1, 1, 10))
	tolAssertEqualMatrix4(t, standardTol, Identity4(), m)

	// depth 0 at near, 1 at far
	p := OrthographicVulkan(0, 1, 0, 1, 1, 10)
	assert.InDelta(t, 0, float64(p.MulVector4(Vec4(0, 0, 1, 1)).Z), standardTol)
	assert.InDelta(t, 1, float64(p.MulVector4(Vec4(0, 0, 10, 1)).Z), standardTol)
}

func TestOrthographicOpenGL(t *testing.T) {
	m := InverseOrthographicOpenGL(0, 1, 0, 1, 1, 10).Mul(OrthographicOpenGL(0, 1, 0, 1, 1, 10))
	tolAssertEqualMatrix4(t, standardTol, Identity4(), m)

	// depth -1 at near, 1 at far
	p := OrthographicOpenGL(0, 1, 0, 1, 1, 10)
	assert.InDelta(t, -1, float64(p.MulVector4(Vec4(0, 0, 1, 1)).Z), standardTol)
	assert.InDelta(t, 1, float64(p.MulVector4(Vec4(0, 0, 10, 1)).Z), standardTol)
}

func TestPerspectiveVulkan(t *testing.T) {
	fov := DegToRad(90)
	m := InversePerspectiveVulkan(fov, 0.1, 100, 1.5).Mul(PerspectiveVulkan(fov, 0.1, 100, 1.5))
	tolAssertEqualMatrix4(t, 1.0e-5, Identity4(), m)

	// a view-space point round-trips through clip space
	p := PerspectiveVulkan(fov, 0.1, 100, 1.5)
	inv := InversePerspectiveVulkan(fov, 0.1, 100, 1.5)
	v := Vec4(1, 2, 5, 1)
	back := inv.MulVector4(p.MulVector4(v))
	tolAssertEqualVector4(t, 1.0e-5, v, back)

	// depth 0 at near, 1 at far
	near := p.MulVector4(Vec4(0, 0, 0.1, 1)).PerspDiv()
	far := p.MulVector4(Vec4(0, 0, 100, 1)).PerspDiv()
	assert.InDelta(t, 0, float64(near.Z), standardTol)
	assert.InDelta(t, 1, float64(far.Z), standardTol)
}

func TestPerspectiveOpenGL(t *testing.T) {
	fov := DegToRad(90)
	m := InversePerspectiveOpenGL(fov, 0.1, 100, 1.5).Mul(PerspectiveOpenGL(fov, 0.1, 100, 1.5))
	tolAssertEqualMatrix4(t, 1.0e-5, Identity4(), m)

	// depth -1 at near, 1 at far
	p := PerspectiveOpenGL(fov, 0.1, 100, 1.5)
	near := p.MulVector4(Vec4(0, 0, 0.1, 1)).PerspDiv()
	far := p.MulVector4(Vec4(0, 0, 100, 1)).PerspDiv()
	assert.InDelta(t, -1, float64(near.Z), standardTol)
	assert.InDelta(t, 1, float64(far.Z), standardTol)
}

func TestMatrix4Mul(t *testing.T) {
	// translation composition is order sensitive
	a := Matrix4Translate(Vec3(1, 0, 0))
	b := Matrix4Scale(Vec3(2, 2, 2))

	// a*b scales first, then translates
	assert.Equal(t, Vec4(3, 0, 0, 1), a.Mul(b).MulVector4(Vec4(1, 0, 0, 1)))
	// b*a translates first, then scales
	assert.Equal(t, Vec4(4, 0, 0, 1), b.Mul(a).MulVector4(Vec4(1, 0, 0, 1)))
	// direction transform on a product ignores the translation either way
	assert.Equal(t, Vec3(2, 0, 0), a.Mul(b).MulVector3(Vec3(1, 0, 0)))
}
