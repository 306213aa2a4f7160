package vga3d

import "fmt"

// Rotor is a unit norm scalar plus bivector applied as reverse(r)*x*r.
//
// Rotors built by NewRotor, TryNewRotor, IdentityRotor and MulRotor satisfy
// scalar² + |bivector|² = 1. Sums and scalings of rotors are returned as
// Multivector since they leave the unit sphere.
type Rotor[F Float] struct {
	s F
	b Bivector[F]
}

// NewRotor returns the rotor for halfAngle, a bivector whose norm is half the
// rotation angle and whose direction is the rotation plane. A zero bivector
// gives the identity.
func NewRotor[F Float](halfAngle Bivector[F]) Rotor[F] {
	n := halfAngle.Norm()
	if n == 0 {
		return IdentityRotor[F]()
	}
	return Rotor[F]{cos(n), halfAngle.Scale(sin(n) / n)}
}

// TryNewRotor returns the rotor turning by twice halfAngle in plane, which
// need not be unit. False if plane is zero.
func TryNewRotor[F Float](halfAngle F, plane Bivector[F]) (Rotor[F], bool) {
	p, ok := plane.TryNormalize()
	if !ok {
		return Rotor[F]{}, false
	}
	return Rotor[F]{cos(halfAngle), p.Scale(sin(halfAngle))}, true
}

func IdentityRotor[F Float]() Rotor[F] { return Rotor[F]{s: 1} }

func (r Rotor[F]) Scalar() F             { return r.s }
func (r Rotor[F]) Bivector() Bivector[F] { return r.b }

// HalfAngle returns acos of the scalar part, clamped against drift past ±1.
func (r Rotor[F]) HalfAngle() F {
	s := r.s
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return acos(s)
}

// RotationPlane returns the unit plane of rotation, or a zero bivector when
// the rotor is a pure scalar and no plane is defined.
func (r Rotor[F]) RotationPlane() Bivector[F] {
	s := sin(r.HalfAngle())
	if s == 0 {
		return Bivector[F]{}
	}
	return r.b.Scale(1 / s)
}

// Neg returns -r, which applies the same rotation as r.
func (r Rotor[F]) Neg() Rotor[F] { return Rotor[F]{-r.s, r.b.Neg()} }

func (r Rotor[F]) Scale(s F) Multivector[F] { return r.Multivector().Scale(s) }

// Div panics if s is zero.
func (r Rotor[F]) Div(s F) Multivector[F] { return r.Multivector().Div(s) }

// Dual returns r*e123, a vector plus trivector.
func (r Rotor[F]) Dual() Multivector[F] {
	return Multivector[F]{v: r.b.Dual(), t: Trivector[F]{r.s}}
}

// Reverse returns the rotor undoing r.
func (r Rotor[F]) Reverse() Rotor[F] { return Rotor[F]{r.s, r.b.Reverse()} }

func (r Rotor[F]) Conjugate() Rotor[F] { return Rotor[F]{r.s, r.b.Conjugate()} }

func (r Rotor[F]) Involute() Rotor[F] { return r }

func (r Rotor[F]) NormSquared() F { return r.s*r.s + r.b.NormSquared() }

func (r Rotor[F]) Norm() F { return sqrt(r.NormSquared()) }

func (r Rotor[F]) TryInverse() (Rotor[F], bool) {
	n := r.NormSquared()
	if n == 0 {
		return Rotor[F]{}, false
	}
	return Rotor[F]{r.s / n, r.b.Reverse().Scale(1 / n)}, true
}

func (r Rotor[F]) Multivector() Multivector[F] { return Multivector[F]{s: r.s, b: r.b} }

func (r Rotor[F]) String() string { return fmt.Sprintf("%v + %v", r.s, r.b) }
