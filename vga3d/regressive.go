package vga3d

// The regressive product is the exterior product carried through the dual,
//
//	a & b = ((-a*) ^ (-b*))*
//
// and has grade r+s-3; pairs below grade 3 combined are identically zero.
// It meets subspaces: two planes meet in a line, a plane and a line in a point.

func regressiveMM[F Float](a, b Multivector[F]) Multivector[F] {
	return wedgeMM(a.Dual().Neg(), b.Dual().Neg()).Dual()
}

// Scalar

func (a Scalar[F]) RegressiveScalar(b F) F { return 0 }

func (a Scalar[F]) RegressiveVector(b Vector[F]) F { return 0 }

func (a Scalar[F]) RegressiveBivector(b Bivector[F]) F { return 0 }

func (a Scalar[F]) RegressiveTrivector(b Trivector[F]) F {
	return a.Dual().Neg().WedgeScalar(-b.Dual()).Dual()
}

func (a Scalar[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b)
}

func (a Scalar[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

// Vector

func (a Vector[F]) RegressiveScalar(b F) F { return 0 }

func (a Vector[F]) RegressiveVector(b Vector[F]) F { return 0 }

func (a Vector[F]) RegressiveBivector(b Bivector[F]) F {
	return a.Dual().Neg().WedgeVector(b.Dual().Neg()).Dual()
}

func (a Vector[F]) RegressiveTrivector(b Trivector[F]) Vector[F] {
	return a.Dual().Neg().WedgeScalar(-b.Dual()).Dual()
}

func (a Vector[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b)
}

func (a Vector[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

// Bivector

func (a Bivector[F]) RegressiveScalar(b F) F { return 0 }

func (a Bivector[F]) RegressiveVector(b Vector[F]) F {
	return a.Dual().Neg().WedgeBivector(b.Dual().Neg()).Dual()
}

// RegressiveBivector returns the line where planes a and b meet.
func (a Bivector[F]) RegressiveBivector(b Bivector[F]) Vector[F] {
	return a.Dual().Neg().WedgeVector(b.Dual().Neg()).Dual()
}

func (a Bivector[F]) RegressiveTrivector(b Trivector[F]) Bivector[F] {
	return a.Dual().Neg().WedgeScalar(-b.Dual()).Dual()
}

func (a Bivector[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b)
}

func (a Bivector[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

// Trivector; the dual of a trivector is a raw scalar, lifted back to Scalar
// to take part in the exterior product.

func (a Trivector[F]) RegressiveScalar(b F) F {
	return NewScalar(-a.Dual()).WedgeTrivector(NewScalar(b).Dual().Neg()).Dual()
}

func (a Trivector[F]) RegressiveVector(b Vector[F]) Vector[F] {
	return NewScalar(-a.Dual()).WedgeBivector(b.Dual().Neg()).Dual()
}

func (a Trivector[F]) RegressiveBivector(b Bivector[F]) Bivector[F] {
	return NewScalar(-a.Dual()).WedgeVector(b.Dual().Neg()).Dual()
}

func (a Trivector[F]) RegressiveTrivector(b Trivector[F]) Trivector[F] {
	return NewScalar(-a.Dual()).WedgeScalar(-b.Dual()).Dual()
}

func (a Trivector[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b)
}

func (a Trivector[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

// Multivector

func (a Multivector[F]) RegressiveScalar(b F) Multivector[F] {
	return regressiveMM(a, Multivector[F]{s: b})
}

func (a Multivector[F]) RegressiveVector(b Vector[F]) Multivector[F] {
	return regressiveMM(a, b.Multivector())
}

func (a Multivector[F]) RegressiveBivector(b Bivector[F]) Multivector[F] {
	return regressiveMM(a, b.Multivector())
}

func (a Multivector[F]) RegressiveTrivector(b Trivector[F]) Multivector[F] {
	return regressiveMM(a, b.Multivector())
}

func (a Multivector[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a, b)
}

func (a Multivector[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a, b.Multivector())
}

// Rotor

func (a Rotor[F]) RegressiveScalar(b F) Multivector[F] {
	return regressiveMM(a.Multivector(), Multivector[F]{s: b})
}

func (a Rotor[F]) RegressiveVector(b Vector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) RegressiveBivector(b Bivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) RegressiveTrivector(b Trivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) RegressiveMultivector(b Multivector[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b)
}

func (a Rotor[F]) RegressiveRotor(b Rotor[F]) Multivector[F] {
	return regressiveMM(a.Multivector(), b.Multivector())
}
