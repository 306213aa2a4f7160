package vga3d

import "fmt"

// Trivector is the grade 3 pseudoscalar; e123 squares to -1.
type Trivector[F Float] struct {
	e123 F
}

func NewTrivector[F Float](e123 F) Trivector[F] { return Trivector[F]{e123} }

func ZeroTrivector[F Float]() Trivector[F] { return Trivector[F]{} }

func (a Trivector[F]) E123() F { return a.e123 }

func (a Trivector[F]) IsZero() bool { return a.e123 == 0 }

func (a Trivector[F]) Neg() Trivector[F] { return Trivector[F]{-a.e123} }

func (a Trivector[F]) Scale(s F) Trivector[F] { return Trivector[F]{a.e123 * s} }

// Div panics if s is zero.
func (a Trivector[F]) Div(s F) Trivector[F] { return a.Scale(divisor("Trivector.Div", s)) }

// Dual returns a*e123, a raw scalar.
func (a Trivector[F]) Dual() F { return -a.e123 }

// Cross is identically zero; there is no grade 4 in three dimensions.
func (a Trivector[F]) Cross(b Trivector[F]) Trivector[F] { return Trivector[F]{} }

func (a Trivector[F]) Reverse() Trivector[F] { return a.Neg() }

func (a Trivector[F]) Conjugate() Trivector[F] { return a }

func (a Trivector[F]) Involute() Trivector[F] { return a.Neg() }

func (a Trivector[F]) NormSquared() F { return a.e123 * a.e123 }

func (a Trivector[F]) Norm() F { return abs(a.e123) }

// TryInverse returns -a/|a|²; false if a is zero.
func (a Trivector[F]) TryInverse() (Trivector[F], bool) {
	n := a.NormSquared()
	if n == 0 {
		return Trivector[F]{}, false
	}
	return a.Reverse().Scale(1 / n), true
}

func (a Trivector[F]) Multivector() Multivector[F] { return Multivector[F]{t: a} }

func (a Trivector[F]) String() string { return fmt.Sprintf("%ve123", a.e123) }
