package vga3d

import (
	"testing"

	"dasa.cc/vga/gma"
)

var (
	sinkMV  Multivector[float64]
	sinkVec Vector[float64]
	sinkR   Rotor[float64]
	sinkQ   UnitQuaternion[float64]
	sinkRef gma.Multivector[float64]
)

func BenchmarkMulMultivector(b *testing.B) {
	x := NewMultivectorComponents(6., 9, 7, 4, 7, 4, 8, 7)
	y := NewMultivectorComponents(5., 8, 7, 3, 2, 8, 2, 1)
	for n := 0; n < b.N; n++ {
		sinkMV = x.MulMultivector(y)
	}
}

func BenchmarkReferenceMul(b *testing.B) {
	x := toGMA(NewMultivectorComponents(6., 9, 7, 4, 7, 4, 8, 7))
	y := toGMA(NewMultivectorComponents(5., 8, 7, 3, 2, 8, 2, 1))
	for n := 0; n < b.N; n++ {
		sinkRef = x.Mul(y)
	}
}

func BenchmarkRotate(b *testing.B) {
	r, _ := TryNewRotor(0.3, NewBivector(1., 2, 3))
	v := NewVector(1., 2, 3)
	for n := 0; n < b.N; n++ {
		sinkVec = v.Rotate(r)
	}
}

func BenchmarkMat3(b *testing.B) {
	r, _ := TryNewRotor(0.3, NewBivector(1., 2, 3))
	v := NewVector(1., 2, 3)
	for n := 0; n < b.N; n++ {
		m := r.Mat3()
		sinkVec = Vector[float64]{
			m[0]*v.e1 + m[1]*v.e2 + m[2]*v.e3,
			m[3]*v.e1 + m[4]*v.e2 + m[5]*v.e3,
			m[6]*v.e1 + m[7]*v.e2 + m[8]*v.e3,
		}
	}
}

func BenchmarkMulRotor(b *testing.B) {
	r, _ := TryNewRotor(0.3, NewBivector(1., 2, 3))
	s, _ := TryNewRotor(0.1, NewBivector(3., 2, 1))
	for n := 0; n < b.N; n++ {
		sinkR = r.MulRotor(s)
	}
}

func BenchmarkUnitQuaternionMul(b *testing.B) {
	r, _ := TryNewRotor(0.3, NewBivector(1., 2, 3))
	s, _ := TryNewRotor(0.1, NewBivector(3., 2, 1))
	p, q := r.ToUnitQuaternion(), s.ToUnitQuaternion()
	for n := 0; n < b.N; n++ {
		sinkQ = p.Mul(q)
	}
}
