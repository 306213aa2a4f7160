package vga3d

import "fmt"

// Vector is a grade 1 element, a linear combination of e1, e2 and e3.
type Vector[F Float] struct {
	e1, e2, e3 F
}

func NewVector[F Float](e1, e2, e3 F) Vector[F] { return Vector[F]{e1, e2, e3} }

func ZeroVector[F Float]() Vector[F] { return Vector[F]{} }

func (a Vector[F]) E1() F { return a.e1 }
func (a Vector[F]) E2() F { return a.e2 }
func (a Vector[F]) E3() F { return a.e3 }

func (a Vector[F]) IsZero() bool { return a == Vector[F]{} }

func (a Vector[F]) Neg() Vector[F] { return Vector[F]{-a.e1, -a.e2, -a.e3} }

func (a Vector[F]) Scale(s F) Vector[F] { return Vector[F]{a.e1 * s, a.e2 * s, a.e3 * s} }

// Div panics if s is zero.
func (a Vector[F]) Div(s F) Vector[F] { return a.Scale(divisor("Vector.Div", s)) }

// Dual returns a*e123.
func (a Vector[F]) Dual() Bivector[F] { return Bivector[F]{a.e3, a.e2, a.e1} }

// Cross returns the conventional cross product a×b, the dual of a^b negated.
func (a Vector[F]) Cross(b Vector[F]) Vector[F] {
	return Vector[F]{
		a.e2*b.e3 - a.e3*b.e2,
		a.e3*b.e1 - a.e1*b.e3,
		a.e1*b.e2 - a.e2*b.e1,
	}
}

func (a Vector[F]) Reverse() Vector[F] { return a }

func (a Vector[F]) Conjugate() Vector[F] { return a.Neg() }

func (a Vector[F]) Involute() Vector[F] { return a.Neg() }

func (a Vector[F]) NormSquared() F { return a.e1*a.e1 + a.e2*a.e2 + a.e3*a.e3 }

func (a Vector[F]) Norm() F { return sqrt(a.NormSquared()) }

// TryInverse returns a/|a|²; false if a is zero.
func (a Vector[F]) TryInverse() (Vector[F], bool) {
	n := a.NormSquared()
	if n == 0 {
		return Vector[F]{}, false
	}
	return a.Scale(1 / n), true
}

// TryNormalize returns a/|a|; false if a is zero.
func (a Vector[F]) TryNormalize() (Vector[F], bool) {
	n := a.Norm()
	if n == 0 {
		return Vector[F]{}, false
	}
	return a.Scale(1 / n), true
}

func (a Vector[F]) Multivector() Multivector[F] { return Multivector[F]{v: a} }

func (a Vector[F]) String() string {
	return fmt.Sprintf("%ve1 + %ve2 + %ve3", a.e1, a.e2, a.e3)
}
