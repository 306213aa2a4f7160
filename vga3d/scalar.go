package vga3d

import "fmt"

// Scalar is a grade 0 element.
type Scalar[F Float] struct {
	s F
}

func NewScalar[F Float](s F) Scalar[F] { return Scalar[F]{s} }

func ZeroScalar[F Float]() Scalar[F] { return Scalar[F]{} }

// Value returns the underlying real number.
func (a Scalar[F]) Value() F { return a.s }

func (a Scalar[F]) Neg() Scalar[F] { return Scalar[F]{-a.s} }

// Dual maps a to the trivector a*e123.
func (a Scalar[F]) Dual() Trivector[F] { return Trivector[F]{a.s} }

func (a Scalar[F]) Reverse() Scalar[F] { return a }

func (a Scalar[F]) Conjugate() Scalar[F] { return a }

func (a Scalar[F]) Involute() Scalar[F] { return a }

func (a Scalar[F]) NormSquared() F { return a.s * a.s }

func (a Scalar[F]) Norm() F { return abs(a.s) }

func (a Scalar[F]) TryInverse() (Scalar[F], bool) {
	if a.s == 0 {
		return Scalar[F]{}, false
	}
	return Scalar[F]{1 / a.s}, true
}

func (a Scalar[F]) Scale(s F) Scalar[F] { return Scalar[F]{a.s * s} }

// Div panics if s is zero.
func (a Scalar[F]) Div(s F) Scalar[F] { return a.Scale(divisor("Scalar.Div", s)) }

func (a Scalar[F]) Multivector() Multivector[F] { return Multivector[F]{s: a.s} }

func (a Scalar[F]) String() string { return fmt.Sprint(a.s) }
