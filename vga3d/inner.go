package vga3d

// The inner product of grades r and s is the grade |r-s| part of the
// geometric product. A pair that cannot lower grade, such as a vector and
// the pseudoscalar, keeps its whole geometric product; scalars scale.

func innerMM[F Float](a, b Multivector[F]) Multivector[F] {
	v := a.v.InnerBivector(b.b).AddVector(a.b.InnerVector(b.v))
	v = v.AddVector(b.v.Scale(a.s)).AddVector(a.v.Scale(b.s))
	v = v.AddVector(a.b.MulTrivector(b.t)).AddVector(a.t.MulBivector(b.b))

	bv := b.b.Scale(a.s).AddBivector(a.b.Scale(b.s))
	bv = bv.AddBivector(a.v.MulTrivector(b.t)).AddBivector(a.t.MulVector(b.v))

	return Multivector[F]{
		a.s*b.s + a.v.InnerVector(b.v) + a.b.InnerBivector(b.b) + a.t.InnerTrivector(b.t),
		v,
		bv,
		Trivector[F]{a.s*b.t.e123 + a.t.e123*b.s},
	}
}

// Scalar

func (a Scalar[F]) InnerScalar(b F) Scalar[F] { return Scalar[F]{a.s * b} }

func (a Scalar[F]) InnerVector(b Vector[F]) Vector[F] { return b.Scale(a.s) }

func (a Scalar[F]) InnerBivector(b Bivector[F]) Bivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) InnerTrivector(b Trivector[F]) Trivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) InnerMultivector(b Multivector[F]) Multivector[F] { return b.Scale(a.s) }

func (a Scalar[F]) InnerRotor(b Rotor[F]) Multivector[F] { return b.Scale(a.s) }

// Vector

func (a Vector[F]) InnerScalar(b F) Vector[F] { return a.Scale(b) }

// InnerVector is the dot product.
func (a Vector[F]) InnerVector(b Vector[F]) F { return a.e1*b.e1 + a.e2*b.e2 + a.e3*b.e3 }

// InnerBivector contracts a onto plane b; the result lies in b, perpendicular to a.
func (a Vector[F]) InnerBivector(b Bivector[F]) Vector[F] {
	return Vector[F]{
		-a.e2*b.e12 + a.e3*b.e31,
		a.e1*b.e12 - a.e3*b.e23,
		-a.e1*b.e31 + a.e2*b.e23,
	}
}

func (a Vector[F]) InnerTrivector(b Trivector[F]) Bivector[F] { return a.MulTrivector(b) }

func (a Vector[F]) InnerMultivector(b Multivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b)
}

func (a Vector[F]) InnerRotor(b Rotor[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

// Bivector

func (a Bivector[F]) InnerScalar(b F) Bivector[F] { return a.Scale(b) }

func (a Bivector[F]) InnerVector(b Vector[F]) Vector[F] {
	return Vector[F]{
		a.e12*b.e2 - a.e31*b.e3,
		-a.e12*b.e1 + a.e23*b.e3,
		a.e31*b.e1 - a.e23*b.e2,
	}
}

// InnerBivector is the grade 0 part of ab.
func (a Bivector[F]) InnerBivector(b Bivector[F]) F {
	return -(a.e12*b.e12 + a.e31*b.e31 + a.e23*b.e23)
}

func (a Bivector[F]) InnerTrivector(b Trivector[F]) Vector[F] { return a.MulTrivector(b) }

func (a Bivector[F]) InnerMultivector(b Multivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b)
}

func (a Bivector[F]) InnerRotor(b Rotor[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

// Trivector

func (a Trivector[F]) InnerScalar(b F) Trivector[F] { return a.Scale(b) }

func (a Trivector[F]) InnerVector(b Vector[F]) Bivector[F] { return a.MulVector(b) }

func (a Trivector[F]) InnerBivector(b Bivector[F]) Vector[F] { return a.MulBivector(b) }

func (a Trivector[F]) InnerTrivector(b Trivector[F]) F { return a.MulTrivector(b) }

func (a Trivector[F]) InnerMultivector(b Multivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b)
}

func (a Trivector[F]) InnerRotor(b Rotor[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

// Multivector

func (a Multivector[F]) InnerScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Multivector[F]) InnerVector(b Vector[F]) Multivector[F] { return innerMM(a, b.Multivector()) }

func (a Multivector[F]) InnerBivector(b Bivector[F]) Multivector[F] { return innerMM(a, b.Multivector()) }

func (a Multivector[F]) InnerTrivector(b Trivector[F]) Multivector[F] {
	return innerMM(a, b.Multivector())
}

func (a Multivector[F]) InnerMultivector(b Multivector[F]) Multivector[F] { return innerMM(a, b) }

func (a Multivector[F]) InnerRotor(b Rotor[F]) Multivector[F] { return innerMM(a, b.Multivector()) }

// Rotor

func (a Rotor[F]) InnerScalar(b F) Multivector[F] { return a.Scale(b) }

func (a Rotor[F]) InnerVector(b Vector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) InnerBivector(b Bivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) InnerTrivector(b Trivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) InnerMultivector(b Multivector[F]) Multivector[F] {
	return innerMM(a.Multivector(), b)
}

func (a Rotor[F]) InnerRotor(b Rotor[F]) Multivector[F] {
	return innerMM(a.Multivector(), b.Multivector())
}
