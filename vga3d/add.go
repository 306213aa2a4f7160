package vga3d

// Addition and subtraction are component-wise per grade. Operands of one
// type are closed under both, except rotors; mixed grades widen to a
// Multivector with the missing grades zero.

func addMM[F Float](a, b Multivector[F]) Multivector[F] {
	return Multivector[F]{
		a.s + b.s,
		Vector[F]{a.v.e1 + b.v.e1, a.v.e2 + b.v.e2, a.v.e3 + b.v.e3},
		Bivector[F]{a.b.e12 + b.b.e12, a.b.e31 + b.b.e31, a.b.e23 + b.b.e23},
		Trivector[F]{a.t.e123 + b.t.e123},
	}
}

func subMM[F Float](a, b Multivector[F]) Multivector[F] { return addMM(a, b.Neg()) }

// Scalar

func (a Scalar[F]) AddScalar(b F) Scalar[F] { return Scalar[F]{a.s + b} }

func (a Scalar[F]) AddVector(b Vector[F]) Multivector[F] { return Multivector[F]{s: a.s, v: b} }

func (a Scalar[F]) AddBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{s: a.s, b: b} }

func (a Scalar[F]) AddTrivector(b Trivector[F]) Multivector[F] { return Multivector[F]{s: a.s, t: b} }

func (a Scalar[F]) AddMultivector(b Multivector[F]) Multivector[F] {
	return addMM(a.Multivector(), b)
}

func (a Scalar[F]) AddRotor(b Rotor[F]) Multivector[F] { return addMM(a.Multivector(), b.Multivector()) }

func (a Scalar[F]) SubScalar(b F) Scalar[F] { return Scalar[F]{a.s - b} }

func (a Scalar[F]) SubVector(b Vector[F]) Multivector[F] { return Multivector[F]{s: a.s, v: b.Neg()} }

func (a Scalar[F]) SubBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{s: a.s, b: b.Neg()} }

func (a Scalar[F]) SubTrivector(b Trivector[F]) Multivector[F] {
	return Multivector[F]{s: a.s, t: b.Neg()}
}

func (a Scalar[F]) SubMultivector(b Multivector[F]) Multivector[F] {
	return subMM(a.Multivector(), b)
}

func (a Scalar[F]) SubRotor(b Rotor[F]) Multivector[F] { return subMM(a.Multivector(), b.Multivector()) }

// Vector

func (a Vector[F]) AddScalar(b F) Multivector[F] { return Multivector[F]{s: b, v: a} }

func (a Vector[F]) AddVector(b Vector[F]) Vector[F] {
	return Vector[F]{a.e1 + b.e1, a.e2 + b.e2, a.e3 + b.e3}
}

func (a Vector[F]) AddBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{v: a, b: b} }

func (a Vector[F]) AddTrivector(b Trivector[F]) Multivector[F] { return Multivector[F]{v: a, t: b} }

func (a Vector[F]) AddMultivector(b Multivector[F]) Multivector[F] {
	return addMM(a.Multivector(), b)
}

func (a Vector[F]) AddRotor(b Rotor[F]) Multivector[F] { return Multivector[F]{s: b.s, v: a, b: b.b} }

func (a Vector[F]) SubScalar(b F) Multivector[F] { return Multivector[F]{s: -b, v: a} }

func (a Vector[F]) SubVector(b Vector[F]) Vector[F] {
	return Vector[F]{a.e1 - b.e1, a.e2 - b.e2, a.e3 - b.e3}
}

func (a Vector[F]) SubBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{v: a, b: b.Neg()} }

func (a Vector[F]) SubTrivector(b Trivector[F]) Multivector[F] {
	return Multivector[F]{v: a, t: b.Neg()}
}

func (a Vector[F]) SubMultivector(b Multivector[F]) Multivector[F] {
	return subMM(a.Multivector(), b)
}

func (a Vector[F]) SubRotor(b Rotor[F]) Multivector[F] {
	return Multivector[F]{s: -b.s, v: a, b: b.b.Neg()}
}

// Bivector

func (a Bivector[F]) AddScalar(b F) Multivector[F] { return Multivector[F]{s: b, b: a} }

func (a Bivector[F]) AddVector(b Vector[F]) Multivector[F] { return Multivector[F]{v: b, b: a} }

func (a Bivector[F]) AddBivector(b Bivector[F]) Bivector[F] {
	return Bivector[F]{a.e12 + b.e12, a.e31 + b.e31, a.e23 + b.e23}
}

func (a Bivector[F]) AddTrivector(b Trivector[F]) Multivector[F] { return Multivector[F]{b: a, t: b} }

func (a Bivector[F]) AddMultivector(b Multivector[F]) Multivector[F] {
	return addMM(a.Multivector(), b)
}

func (a Bivector[F]) AddRotor(b Rotor[F]) Multivector[F] { return addMM(a.Multivector(), b.Multivector()) }

func (a Bivector[F]) SubScalar(b F) Multivector[F] { return Multivector[F]{s: -b, b: a} }

func (a Bivector[F]) SubVector(b Vector[F]) Multivector[F] { return Multivector[F]{v: b.Neg(), b: a} }

func (a Bivector[F]) SubBivector(b Bivector[F]) Bivector[F] {
	return Bivector[F]{a.e12 - b.e12, a.e31 - b.e31, a.e23 - b.e23}
}

func (a Bivector[F]) SubTrivector(b Trivector[F]) Multivector[F] {
	return Multivector[F]{b: a, t: b.Neg()}
}

func (a Bivector[F]) SubMultivector(b Multivector[F]) Multivector[F] {
	return subMM(a.Multivector(), b)
}

func (a Bivector[F]) SubRotor(b Rotor[F]) Multivector[F] { return subMM(a.Multivector(), b.Multivector()) }

// Trivector

func (a Trivector[F]) AddScalar(b F) Multivector[F] { return Multivector[F]{s: b, t: a} }

func (a Trivector[F]) AddVector(b Vector[F]) Multivector[F] { return Multivector[F]{v: b, t: a} }

func (a Trivector[F]) AddBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{b: b, t: a} }

func (a Trivector[F]) AddTrivector(b Trivector[F]) Trivector[F] { return Trivector[F]{a.e123 + b.e123} }

func (a Trivector[F]) AddMultivector(b Multivector[F]) Multivector[F] {
	return addMM(a.Multivector(), b)
}

func (a Trivector[F]) AddRotor(b Rotor[F]) Multivector[F] { return Multivector[F]{s: b.s, b: b.b, t: a} }

func (a Trivector[F]) SubScalar(b F) Multivector[F] { return Multivector[F]{s: -b, t: a} }

func (a Trivector[F]) SubVector(b Vector[F]) Multivector[F] { return Multivector[F]{v: b.Neg(), t: a} }

func (a Trivector[F]) SubBivector(b Bivector[F]) Multivector[F] { return Multivector[F]{b: b.Neg(), t: a} }

func (a Trivector[F]) SubTrivector(b Trivector[F]) Trivector[F] { return Trivector[F]{a.e123 - b.e123} }

func (a Trivector[F]) SubMultivector(b Multivector[F]) Multivector[F] {
	return subMM(a.Multivector(), b)
}

func (a Trivector[F]) SubRotor(b Rotor[F]) Multivector[F] {
	return Multivector[F]{s: -b.s, b: b.b.Neg(), t: a}
}

// Multivector

func (a Multivector[F]) AddScalar(b F) Multivector[F] { return addMM(a, Multivector[F]{s: b}) }

func (a Multivector[F]) AddVector(b Vector[F]) Multivector[F] { return addMM(a, b.Multivector()) }

func (a Multivector[F]) AddBivector(b Bivector[F]) Multivector[F] { return addMM(a, b.Multivector()) }

func (a Multivector[F]) AddTrivector(b Trivector[F]) Multivector[F] { return addMM(a, b.Multivector()) }

func (a Multivector[F]) AddMultivector(b Multivector[F]) Multivector[F] { return addMM(a, b) }

func (a Multivector[F]) AddRotor(b Rotor[F]) Multivector[F] { return addMM(a, b.Multivector()) }

func (a Multivector[F]) SubScalar(b F) Multivector[F] { return subMM(a, Multivector[F]{s: b}) }

func (a Multivector[F]) SubVector(b Vector[F]) Multivector[F] { return subMM(a, b.Multivector()) }

func (a Multivector[F]) SubBivector(b Bivector[F]) Multivector[F] { return subMM(a, b.Multivector()) }

func (a Multivector[F]) SubTrivector(b Trivector[F]) Multivector[F] { return subMM(a, b.Multivector()) }

func (a Multivector[F]) SubMultivector(b Multivector[F]) Multivector[F] { return subMM(a, b) }

func (a Multivector[F]) SubRotor(b Rotor[F]) Multivector[F] { return subMM(a, b.Multivector()) }

// Rotor; sums are not unit norm and so are never rotors.

func (a Rotor[F]) AddScalar(b F) Multivector[F] { return addMM(a.Multivector(), Multivector[F]{s: b}) }

func (a Rotor[F]) AddVector(b Vector[F]) Multivector[F] {
	return Multivector[F]{s: a.s, v: b, b: a.b}
}

func (a Rotor[F]) AddBivector(b Bivector[F]) Multivector[F] {
	return addMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) AddTrivector(b Trivector[F]) Multivector[F] {
	return Multivector[F]{s: a.s, b: a.b, t: b}
}

func (a Rotor[F]) AddMultivector(b Multivector[F]) Multivector[F] { return addMM(a.Multivector(), b) }

func (a Rotor[F]) AddRotor(b Rotor[F]) Multivector[F] {
	return addMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) SubScalar(b F) Multivector[F] { return subMM(a.Multivector(), Multivector[F]{s: b}) }

func (a Rotor[F]) SubVector(b Vector[F]) Multivector[F] {
	return Multivector[F]{s: a.s, v: b.Neg(), b: a.b}
}

func (a Rotor[F]) SubBivector(b Bivector[F]) Multivector[F] {
	return subMM(a.Multivector(), b.Multivector())
}

func (a Rotor[F]) SubTrivector(b Trivector[F]) Multivector[F] {
	return Multivector[F]{s: a.s, b: a.b, t: b.Neg()}
}

func (a Rotor[F]) SubMultivector(b Multivector[F]) Multivector[F] { return subMM(a.Multivector(), b) }

func (a Rotor[F]) SubRotor(b Rotor[F]) Multivector[F] {
	return subMM(a.Multivector(), b.Multivector())
}
