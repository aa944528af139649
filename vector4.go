// Copyright 2024 The gfx-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfxmath

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32 `json:"x" toml:"x"`
	Y float32 `json:"y" toml:"y"`
	Z float32 `json:"z" toml:"z"`
	W float32 `json:"w" toml:"w"`
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

// Vector4Zero returns a new [Vector4] with all components set to 0.
func Vector4Zero() Vector4 {
	return Vector4{}
}

// Vector4One returns a new [Vector4] with all components set to 1.
func Vector4One() Vector4 {
	return Vector4{X: 1, Y: 1, Z: 1, W: 1}
}

// Vector4FromVector3 returns a new [Vector4] extending the given [Vector3]
// with the given w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vector4FromArray returns a new [Vector4] from the given array.
func Vector4FromArray(array [4]float32) Vector4 {
	return Vector4{X: array[0], Y: array[1], Z: array[2], W: array[3]}
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
	v.W = scalar
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// ToArray returns this vector as a fixed-size array, in X, Y, Z, W order.
func (v Vector4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds scalar s to each component of this vector and returns a new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SetAdd sets this to addition with the other vector (i.e., += or plus-equals).
func (v *Vector4) SetAdd(other Vector4) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
}

// SetAddScalar sets this to addition with the scalar.
func (v *Vector4) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
}

// Sub subtracts the other vector from this one and returns the result in a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts scalar s from each component of this vector and returns a new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// SetSub sets this to subtraction with the other vector (i.e., -= or minus-equals).
func (v *Vector4) SetSub(other Vector4) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
}

// SetSubScalar sets this to subtraction of the scalar.
func (v *Vector4) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
	v.W -= s
}

// Mul multiplies each component of this vector by the corresponding one from the
// other vector and returns the resulting vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns
// the resulting vector. Scalar multiplication is commutative: v.MulScalar(s)
// equals s times v in either order.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// SetMul sets this to multiplication with the other vector (i.e., *= or times-equals).
func (v *Vector4) SetMul(other Vector4) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
}

// SetMulScalar sets this to multiplication by the scalar.
func (v *Vector4) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// Div divides each component of this vector by the corresponding one from the
// other vector and returns the resulting vector. Zero components in other
// yield Inf or NaN results.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns
// the resulting vector. A zero scalar yields Inf or NaN components.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// ScalarDiv divides the scalar s by each component of this vector and returns
// the resulting vector: (s/X, s/Y, s/Z, s/W). Note that this is not the same
// as scaling by 1/s.
func (v Vector4) ScalarDiv(s float32) Vector4 {
	return Vector4{s / v.X, s / v.Y, s / v.Z, s / v.W}
}

// SetDiv sets this to division by the other vector (i.e., /= or divide-equals).
func (v *Vector4) SetDiv(other Vector4) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
}

// SetDivScalar sets this to division by the scalar.
func (v *Vector4) SetDivScalar(s float32) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector yields NaN components.
func (v Vector4) Normal() Vector4 {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector in place so its length will be 1.
// The zero vector yields NaN components.
func (v *Vector4) SetNormal() {
	v.SetDivScalar(v.Length())
}

// Lerp returns a vector with each component as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha,
		v.W + (other.W-v.W)*alpha}
}

// Matrix operations:

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix, using the
// full 4-component homogeneous transform.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{
		m.Get(0, 0)*v.X + m.Get(1, 0)*v.Y + m.Get(2, 0)*v.Z + m.Get(3, 0)*v.W,
		m.Get(0, 1)*v.X + m.Get(1, 1)*v.Y + m.Get(2, 1)*v.Z + m.Get(3, 1)*v.W,
		m.Get(0, 2)*v.X + m.Get(1, 2)*v.Y + m.Get(2, 2)*v.Z + m.Get(3, 2)*v.W,
		m.Get(0, 3)*v.X + m.Get(1, 3)*v.Y + m.Get(2, 3)*v.Z + m.Get(3, 3)*v.W,
	}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC)
// from this 4-vector, by dividing by the W component.
func (v Vector4) PerspDiv() Vector3 {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}
