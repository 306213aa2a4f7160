package vga3d

/* basis products used below

e1e2 = e12    e2e1 = -e12
e3e1 = e31    e1e3 = -e31
e2e3 = e23    e3e2 = -e23

e12e12 = e31e31 = e23e23 = e123e123 = -1

e12e31 = e23  e31e23 = e12  e23e12 = e31
e1e12 = e2    e2e12 = -e1   e3e12 = e123
e12e1 = -e2   e12e2 = e1    e12e3 = e123
*/

// mulMM is the full geometric product; every mixed pair involving a
// Multivector or Rotor reduces to it.
func mulMM[F Float](a, b Multivector[F]) Multivector[F] {
	s, v1, v2, v3 := a.s, a.v.e1, a.v.e2, a.v.e3
	b12, b31, b23, p := a.b.e12, a.b.e31, a.b.e23, a.t.e123
	t, w1, w2, w3 := b.s, b.v.e1, b.v.e2, b.v.e3
	c12, c31, c23, q := b.b.e12, b.b.e31, b.b.e23, b.t.e123

	return Multivector[F]{
		s*t + v1*w1 + v2*w2 + v3*w3 - b12*c12 - b31*c31 - b23*c23 - p*q,
		Vector[F]{
			s*w1 + v1*t - v2*c12 + v3*c31 + b12*w2 - b31*w3 - b23*q - p*c23,
			s*w2 + v2*t + v1*c12 - v3*c23 - b12*w1 + b23*w3 - b31*q - p*c31,
			s*w3 + v3*t - v1*c31 + v2*c23 + b31*w1 - b23*w2 - b12*q - p*c12,
		},
		Bivector[F]{
			s*c12 + b12*t + v1*w2 - v2*w1 + v3*q + b31*c23 - b23*c31 + p*w3,
			s*c31 + b31*t + v3*w1 - v1*w3 + v2*q + b23*c12 - b12*c23 + p*w2,
			s*c23 + b23*t + v2*w3 - v3*w2 + v1*q + b12*c31 - b31*c12 + p*w1,
		},
		Trivector[F]{
			s*q + p*t + v1*c23 + v2*c31 + v3*c12 + b12*w3 + b31*w2 + b23*w1,
		},
	}
}

// Scalar

func (a Scalar[F]) MulScalar(b F) Scalar[F] { return Scalar[F]{a.s * b} }

func (a Scalar[F]) MulVector(b Vector[F]) Vector[F] { return b.Scale(a.s) }

func (a Scalar[F]) MulBivector(b Bivector[F]) Bivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) MulTrivector(b Trivector[F]) Trivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) MulMultivector(b Multivector[F]) Multivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) MulRotor(b Rotor[F]) Multivector[F] { return b.Scale(a.s) }

// Vector

func (a Vector[F]) MulScalar(b F) Vector[F] { return a.Scale(b) }

// MulVector returns a·b + a^b.
func (a Vector[F]) MulVector(b Vector[F]) Multivector[F] {
	return Multivector[F]{s: a.InnerVector(b), b: a.WedgeVector(b)}
}

// MulBivector returns a|b + a^b, a vector plus trivector.
func (a Vector[F]) MulBivector(b Bivector[F]) Multivector[F] {
	return Multivector[F]{v: a.InnerBivector(b), t: a.WedgeBivector(b)}
}

func (a Vector[F]) MulTrivector(b Trivector[F]) Bivector[F] { return a.Dual().Scale(b.e123) }

func (a Vector[F]) MulMultivector(b Multivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b)
}

func (a Vector[F]) MulRotor(b Rotor[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

// Bivector

func (a Bivector[F]) MulScalar(b F) Bivector[F] { return a.Scale(b) }

// MulVector returns a|b + a^b, a vector plus trivector.
func (a Bivector[F]) MulVector(b Vector[F]) Multivector[F] {
	return Multivector[F]{v: a.InnerVector(b), t: a.WedgeVector(b)}
}

// MulBivector returns a scalar plus bivector; the bivector part is a.Cross(b).
func (a Bivector[F]) MulBivector(b Bivector[F]) Multivector[F] {
	return Multivector[F]{s: a.InnerBivector(b), b: a.Cross(b)}
}

func (a Bivector[F]) MulTrivector(b Trivector[F]) Vector[F] { return a.Dual().Scale(b.e123) }

func (a Bivector[F]) MulMultivector(b Multivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b)
}

func (a Bivector[F]) MulRotor(b Rotor[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

// Trivector; the pseudoscalar commutes with everything in three dimensions.

func (a Trivector[F]) MulScalar(b F) Trivector[F] { return a.Scale(b) }

func (a Trivector[F]) MulVector(b Vector[F]) Bivector[F] { return b.Dual().Scale(a.e123) }

func (a Trivector[F]) MulBivector(b Bivector[F]) Vector[F] { return b.Dual().Scale(a.e123) }

// MulTrivector returns -ab since e123² = -1.
func (a Trivector[F]) MulTrivector(b Trivector[F]) F { return -a.e123 * b.e123 }

func (a Trivector[F]) MulMultivector(b Multivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b)
}

func (a Trivector[F]) MulRotor(b Rotor[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

// Multivector

func (a Multivector[F]) MulScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Multivector[F]) MulVector(b Vector[F]) Multivector[F] { return mulMM(a, b.Multivector()) }

func (a Multivector[F]) MulBivector(b Bivector[F]) Multivector[F] { return mulMM(a, b.Multivector()) }

func (a Multivector[F]) MulTrivector(b Trivector[F]) Multivector[F] { return mulMM(a, b.Multivector()) }

func (a Multivector[F]) MulMultivector(b Multivector[F]) Multivector[F] { return mulMM(a, b) }

func (a Multivector[F]) MulRotor(b Rotor[F]) Multivector[F] { return mulMM(a, b.Multivector()) }

// Rotor

func (a Rotor[F]) MulScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Rotor[F]) MulVector(b Vector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) MulBivector(b Bivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) MulTrivector(b Trivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) MulMultivector(b Multivector[F]) Multivector[F] {
	return mulMM(a.Multivector(), b)
}

// MulRotor composes rotations: x.Rotate(a.MulRotor(b)) is x rotated by a then
// by b. The product is divided by its norm to hold it on the unit sphere
// against rounding drift.
func (a Rotor[F]) MulRotor(b Rotor[F]) Rotor[F] {
	r := Rotor[F]{
		a.s*b.s + a.b.InnerBivector(b.b),
		b.b.Scale(a.s).AddBivector(a.b.Scale(b.s)).AddBivector(a.b.Cross(b.b)),
	}
	n := r.Norm()
	if n == 0 {
		return r
	}
	return Rotor[F]{r.s / n, r.b.Scale(1 / n)}
}
