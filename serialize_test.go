// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The types carry json and toml tags with the lowercase component names,
// so they interoperate with structured serialization frameworks without
// custom marshalers.

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Vec3(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"z":3}`, string(data))

	data, err = json.Marshal(NewColor(1, 0, 0.5, 1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":1,"g":0,"b":0.5,"a":1}`, string(data))

	data, err = json.Marshal(QuatIdentity())
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":0,"y":0,"z":0,"w":1}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	v := Vec4(1, 2.5, -3, 0)
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var back Vector4
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, v, back)

	// Matrix4 is a flat array and serializes as one
	m := Matrix4Translate(Vec3(1, 2, 3))
	data, err = json.Marshal(m)
	require.NoError(t, err)
	var mback Matrix4
	require.NoError(t, json.Unmarshal(data, &mback))
	assert.Equal(t, m, mback)
}

func TestTOMLRoundTrip(t *testing.T) {
	type scene struct {
		Position Vector3 `toml:"position"`
		Tint     Color   `toml:"tint"`
	}
	in := scene{
		Position: Vec3(1, 2, 3),
		Tint:     ColorFromHexRGB(0xFF0000),
	}
	data, err := toml.Marshal(in)
	require.NoError(t, err)

	var out scene
	require.NoError(t, toml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
