package math

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32, whose matrices share
// our row-major layout: m[n*r + c] is row r, column c.

func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}

func (mt Mat3) F32() f32.Mat3 {
	return f32.Mat3(mt.Data())
}

func Mat3FromF32(m f32.Mat3) Mat3 {
	return NewMat3FromData(m)
}

func (mt Mat4) F32() f32.Mat4 {
	return f32.Mat4(mt.Data())
}

func Mat4FromF32(m f32.Mat4) Mat4 {
	return NewMat4FromData(m)
}
