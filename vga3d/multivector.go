package vga3d

import "fmt"

// Multivector is a free sum of one element of each grade.
type Multivector[F Float] struct {
	s F
	v Vector[F]
	b Bivector[F]
	t Trivector[F]
}

func NewMultivector[F Float](s F, v Vector[F], b Bivector[F], t Trivector[F]) Multivector[F] {
	return Multivector[F]{s, v, b, t}
}

// NewMultivectorComponents orders components by grade then basis:
// scalar, e1, e2, e3, e12, e31, e23, e123.
func NewMultivectorComponents[F Float](s, e1, e2, e3, e12, e31, e23, e123 F) Multivector[F] {
	return Multivector[F]{s, Vector[F]{e1, e2, e3}, Bivector[F]{e12, e31, e23}, Trivector[F]{e123}}
}

func ZeroMultivector[F Float]() Multivector[F] { return Multivector[F]{} }

func (a Multivector[F]) Scalar() F               { return a.s }
func (a Multivector[F]) Vector() Vector[F]       { return a.v }
func (a Multivector[F]) Bivector() Bivector[F]   { return a.b }
func (a Multivector[F]) Trivector() Trivector[F] { return a.t }

func (a Multivector[F]) E1() F   { return a.v.e1 }
func (a Multivector[F]) E2() F   { return a.v.e2 }
func (a Multivector[F]) E3() F   { return a.v.e3 }
func (a Multivector[F]) E12() F  { return a.b.e12 }
func (a Multivector[F]) E31() F  { return a.b.e31 }
func (a Multivector[F]) E23() F  { return a.b.e23 }
func (a Multivector[F]) E123() F { return a.t.e123 }

// Components returns the coefficients in NewMultivectorComponents order.
func (a Multivector[F]) Components() [8]F {
	return [8]F{a.s, a.v.e1, a.v.e2, a.v.e3, a.b.e12, a.b.e31, a.b.e23, a.t.e123}
}

// Grade returns the part of a of grade k, or zero if k is out of range.
func (a Multivector[F]) Grade(k int) Multivector[F] {
	switch k {
	case 0:
		return Multivector[F]{s: a.s}
	case 1:
		return Multivector[F]{v: a.v}
	case 2:
		return Multivector[F]{b: a.b}
	case 3:
		return Multivector[F]{t: a.t}
	}
	return Multivector[F]{}
}

// Even returns the scalar and bivector parts of a as an unnormalized rotor.
func (a Multivector[F]) Even() Multivector[F] { return Multivector[F]{s: a.s, b: a.b} }

func (a Multivector[F]) IsZero() bool { return a == Multivector[F]{} }

func (a Multivector[F]) Neg() Multivector[F] {
	return Multivector[F]{-a.s, a.v.Neg(), a.b.Neg(), a.t.Neg()}
}

func (a Multivector[F]) Scale(s F) Multivector[F] {
	return Multivector[F]{a.s * s, a.v.Scale(s), a.b.Scale(s), a.t.Scale(s)}
}

// Div panics if s is zero.
func (a Multivector[F]) Div(s F) Multivector[F] { return a.Scale(divisor("Multivector.Div", s)) }

// Dual returns a*e123.
func (a Multivector[F]) Dual() Multivector[F] {
	return Multivector[F]{a.t.Dual(), a.b.Dual(), a.v.Dual(), Trivector[F]{a.s}}
}

func (a Multivector[F]) Reverse() Multivector[F] {
	return Multivector[F]{a.s, a.v, a.b.Reverse(), a.t.Reverse()}
}

func (a Multivector[F]) Conjugate() Multivector[F] {
	return Multivector[F]{a.s, a.v.Conjugate(), a.b.Conjugate(), a.t}
}

func (a Multivector[F]) Involute() Multivector[F] {
	return Multivector[F]{a.s, a.v.Involute(), a.b, a.t.Involute()}
}

// NormSquared is the scalar part of a reversed times a.
func (a Multivector[F]) NormSquared() F {
	return a.s*a.s + a.v.NormSquared() + a.b.NormSquared() + a.t.NormSquared()
}

func (a Multivector[F]) Norm() F { return sqrt(a.NormSquared()) }

// TryInverse returns reverse(a) divided by the scalar part of a*reverse(a);
// false if that scalar is zero. The result is the exact inverse for blades,
// versors and rotors.
func (a Multivector[F]) TryInverse() (Multivector[F], bool) {
	n := a.NormSquared()
	if n == 0 {
		return Multivector[F]{}, false
	}
	return a.Reverse().Scale(1 / n), true
}

func (a Multivector[F]) Multivector() Multivector[F] { return a }

func (a Multivector[F]) String() string {
	return fmt.Sprintf("%v + %v + %v + %v", a.s, a.v, a.b, a.t)
}
