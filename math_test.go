// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func tolAssertEqualVector3(t *testing.T, tol float64, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, tol)
	assert.InDelta(t, vt.Y, va.Y, tol)
	assert.InDelta(t, vt.Z, va.Z, tol)
}

func tolAssertEqualVector4(t *testing.T, tol float64, vt, va Vector4) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, tol)
	assert.InDelta(t, vt.Y, va.Y, tol)
	assert.InDelta(t, vt.Z, va.Z, tol)
	assert.InDelta(t, vt.W, va.W, tol)
}

func tolAssertEqualMatrix4(t *testing.T, tol float64, mt, ma Matrix4) {
	t.Helper()
	for i := range mt {
		assert.InDelta(t, mt[i], ma[i], tol)
	}
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), standardTol)
	assert.InDelta(t, 180, RadToDeg(Pi), standardTol)
	assert.InDelta(t, 90, RadToDeg(DegToRad(90)), standardTol)
}
