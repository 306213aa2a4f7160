package vga3d

import "fmt"

// Bivector is a grade 2 element over the oriented planes e12, e31 and e23.
type Bivector[F Float] struct {
	e12, e31, e23 F
}

func NewBivector[F Float](e12, e31, e23 F) Bivector[F] { return Bivector[F]{e12, e31, e23} }

func ZeroBivector[F Float]() Bivector[F] { return Bivector[F]{} }

func (a Bivector[F]) E12() F { return a.e12 }
func (a Bivector[F]) E31() F { return a.e31 }
func (a Bivector[F]) E23() F { return a.e23 }

func (a Bivector[F]) IsZero() bool { return a == Bivector[F]{} }

func (a Bivector[F]) Neg() Bivector[F] { return Bivector[F]{-a.e12, -a.e31, -a.e23} }

func (a Bivector[F]) Scale(s F) Bivector[F] { return Bivector[F]{a.e12 * s, a.e31 * s, a.e23 * s} }

// Div panics if s is zero.
func (a Bivector[F]) Div(s F) Bivector[F] { return a.Scale(divisor("Bivector.Div", s)) }

// Dual returns a*e123.
func (a Bivector[F]) Dual() Vector[F] { return Vector[F]{-a.e23, -a.e31, -a.e12} }

// Cross returns the grade 2 part of the geometric product ab.
func (a Bivector[F]) Cross(b Bivector[F]) Bivector[F] {
	return Bivector[F]{
		a.e31*b.e23 - a.e23*b.e31,
		a.e23*b.e12 - a.e12*b.e23,
		a.e12*b.e31 - a.e31*b.e12,
	}
}

func (a Bivector[F]) Reverse() Bivector[F] { return a.Neg() }

func (a Bivector[F]) Conjugate() Bivector[F] { return a.Neg() }

func (a Bivector[F]) Involute() Bivector[F] { return a }

func (a Bivector[F]) NormSquared() F { return a.e12*a.e12 + a.e31*a.e31 + a.e23*a.e23 }

func (a Bivector[F]) Norm() F { return sqrt(a.NormSquared()) }

// TryInverse returns -a/|a|²; false if a is zero.
func (a Bivector[F]) TryInverse() (Bivector[F], bool) {
	n := a.NormSquared()
	if n == 0 {
		return Bivector[F]{}, false
	}
	return a.Reverse().Scale(1 / n), true
}

// TryNormalize returns a/|a|; false if a is zero.
func (a Bivector[F]) TryNormalize() (Bivector[F], bool) {
	n := a.Norm()
	if n == 0 {
		return Bivector[F]{}, false
	}
	return a.Scale(1 / n), true
}

func (a Bivector[F]) Multivector() Multivector[F] { return Multivector[F]{b: a} }

func (a Bivector[F]) String() string {
	return fmt.Sprintf("%ve12 + %ve31 + %ve23", a.e12, a.e31, a.e23)
}
