package vga3d

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func (a Vector[F]) F64() f64.Vec3 { return f64.Vec3{float64(a.e1), float64(a.e2), float64(a.e3)} }

func (a Vector[F]) F32() f32.Vec3 { return f32.Vec3{float32(a.e1), float32(a.e2), float32(a.e3)} }

func VectorF64(v f64.Vec3) Vector[float64] { return Vector[float64]{v[0], v[1], v[2]} }

func VectorF32(v f32.Vec3) Vector[float32] { return Vector[float32]{v[0], v[1], v[2]} }

// basis returns the images of e1, e2 and e3 under r.
func (r Rotor[F]) basis() (x, y, z Vector[F]) {
	x = Vector[F]{1, 0, 0}.Rotate(r)
	y = Vector[F]{0, 1, 0}.Rotate(r)
	z = Vector[F]{0, 0, 1}.Rotate(r)
	return
}

// Mat3 returns the row major rotation matrix m where m·v is v.Rotate(r).
func (r Rotor[F]) Mat3() f64.Mat3 {
	x, y, z := r.basis()
	return f64.Mat3{
		float64(x.e1), float64(y.e1), float64(z.e1),
		float64(x.e2), float64(y.e2), float64(z.e2),
		float64(x.e3), float64(y.e3), float64(z.e3),
	}
}

// Mat4 returns the homogeneous rotation matrix in column major order, the
// layout uploaded to GL uniforms.
func (r Rotor[F]) Mat4() f32.Mat4 {
	x, y, z := r.basis()
	return f32.Mat4{
		float32(x.e1), float32(x.e2), float32(x.e3), 0,
		float32(y.e1), float32(y.e2), float32(y.e3), 0,
		float32(z.e1), float32(z.e2), float32(z.e3), 0,
		0, 0, 0, 1,
	}
}
