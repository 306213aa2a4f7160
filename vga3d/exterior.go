package vga3d

// The exterior product of grades r and s is the grade r+s part of the
// geometric product, identically zero once r+s exceeds 3.

func wedgeMM[F Float](a, b Multivector[F]) Multivector[F] {
	return Multivector[F]{
		a.s * b.s,
		b.v.Scale(a.s).AddVector(a.v.Scale(b.s)),
		b.b.Scale(a.s).AddBivector(a.b.Scale(b.s)).AddBivector(a.v.WedgeVector(b.v)),
		Trivector[F]{a.s*b.t.e123 + a.t.e123*b.s}.
			AddTrivector(a.v.WedgeBivector(b.b)).
			AddTrivector(a.b.WedgeVector(b.v)),
	}
}

// Scalar

func (a Scalar[F]) WedgeScalar(b F) Scalar[F] { return Scalar[F]{a.s * b} }

func (a Scalar[F]) WedgeVector(b Vector[F]) Vector[F] { return b.Scale(a.s) }

func (a Scalar[F]) WedgeBivector(b Bivector[F]) Bivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) WedgeTrivector(b Trivector[F]) Trivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) WedgeMultivector(b Multivector[F]) Multivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) WedgeRotor(b Rotor[F]) Multivector[F] { return b.Scale(a.s) }

// Vector

func (a Vector[F]) WedgeScalar(b F) Vector[F] { return a.Scale(b) }

// WedgeVector returns the oriented plane spanned by a and b.
func (a Vector[F]) WedgeVector(b Vector[F]) Bivector[F] {
	return Bivector[F]{
		a.e1*b.e2 - a.e2*b.e1,
		a.e3*b.e1 - a.e1*b.e3,
		a.e2*b.e3 - a.e3*b.e2,
	}
}

func (a Vector[F]) WedgeBivector(b Bivector[F]) Trivector[F] {
	return Trivector[F]{a.e1*b.e23 + a.e2*b.e31 + a.e3*b.e12}
}

func (a Vector[F]) WedgeTrivector(b Trivector[F]) F { return 0 }

func (a Vector[F]) WedgeMultivector(b Multivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b)
}

func (a Vector[F]) WedgeRotor(b Rotor[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

// Bivector

func (a Bivector[F]) WedgeScalar(b F) Bivector[F] { return a.Scale(b) }

func (a Bivector[F]) WedgeVector(b Vector[F]) Trivector[F] {
	return Trivector[F]{a.e12*b.e3 + a.e31*b.e2 + a.e23*b.e1}
}

func (a Bivector[F]) WedgeBivector(b Bivector[F]) F { return 0 }

func (a Bivector[F]) WedgeTrivector(b Trivector[F]) F { return 0 }

func (a Bivector[F]) WedgeMultivector(b Multivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b)
}

func (a Bivector[F]) WedgeRotor(b Rotor[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

// Trivector

func (a Trivector[F]) WedgeScalar(b F) Trivector[F] { return a.Scale(b) }

func (a Trivector[F]) WedgeVector(b Vector[F]) F { return 0 }

func (a Trivector[F]) WedgeBivector(b Bivector[F]) F { return 0 }

func (a Trivector[F]) WedgeTrivector(b Trivector[F]) F { return 0 }

func (a Trivector[F]) WedgeMultivector(b Multivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b)
}

func (a Trivector[F]) WedgeRotor(b Rotor[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

// Multivector

func (a Multivector[F]) WedgeScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Multivector[F]) WedgeVector(b Vector[F]) Multivector[F] { return wedgeMM(a, b.Multivector()) }

func (a Multivector[F]) WedgeBivector(b Bivector[F]) Multivector[F] { return wedgeMM(a, b.Multivector()) }

func (a Multivector[F]) WedgeTrivector(b Trivector[F]) Multivector[F] {
	return wedgeMM(a, b.Multivector())
}

func (a Multivector[F]) WedgeMultivector(b Multivector[F]) Multivector[F] { return wedgeMM(a, b) }

func (a Multivector[F]) WedgeRotor(b Rotor[F]) Multivector[F] { return wedgeMM(a, b.Multivector()) }

// Rotor

func (a Rotor[F]) WedgeScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Rotor[F]) WedgeVector(b Vector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) WedgeBivector(b Bivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) WedgeTrivector(b Trivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) WedgeMultivector(b Multivector[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b)
}

func (a Rotor[F]) WedgeRotor(b Rotor[F]) Multivector[F] {
	return wedgeMM(a.Multivector(), b.Multivector())
}
