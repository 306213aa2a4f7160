package vga3d

// Element is any entity of the algebra; every entity widens to a Multivector.
type Element[F Float] interface {
	Multivector() Multivector[F]
}

// Ops is the set of unary operations every entity provides.
type Ops[F Float, T any] interface {
	Reverse() T
	Conjugate() T
	Involute() T
	Norm() F
	TryInverse() (T, bool)
}

type Rotatable[F Float, T any] interface {
	Rotate(r Rotor[F]) T
}

type Projectable[F Float, T any] interface {
	TryProject(target Element[F]) (T, bool)
}

type Rejectable[F Float, T any] interface {
	TryReject(target Element[F]) (T, bool)
}

type Reflectable[F Float, T any] interface {
	TryReflect(target Element[F]) (T, bool)
}

var (
	_ Ops[float64, Scalar[float64]]      = Scalar[float64]{}
	_ Ops[float64, Vector[float64]]      = Vector[float64]{}
	_ Ops[float64, Bivector[float64]]    = Bivector[float64]{}
	_ Ops[float64, Trivector[float64]]   = Trivector[float64]{}
	_ Ops[float64, Multivector[float64]] = Multivector[float64]{}
	_ Ops[float64, Rotor[float64]]       = Rotor[float64]{}

	_ Rotatable[float64, Vector[float64]]      = Vector[float64]{}
	_ Rotatable[float64, Bivector[float64]]    = Bivector[float64]{}
	_ Rotatable[float64, Trivector[float64]]   = Trivector[float64]{}
	_ Rotatable[float64, Multivector[float64]] = Multivector[float64]{}

	_ Projectable[float32, Vector[float32]]      = Vector[float32]{}
	_ Rejectable[float32, Bivector[float32]]     = Bivector[float32]{}
	_ Reflectable[float32, Multivector[float32]] = Multivector[float32]{}
)

// RotateAll rotates every element of xs by r in place and returns xs.
func RotateAll[F Float, T Rotatable[F, T]](xs []T, r Rotor[F]) []T {
	for i, x := range xs {
		xs[i] = x.Rotate(r)
	}
	return xs
}

// rotate is the sandwich product reverse(r)*a*r.
func rotate[F Float](a Multivector[F], r Rotor[F]) Multivector[F] {
	return mulMM(mulMM(r.Reverse().Multivector(), a), r.Multivector())
}

func project[F Float](a Multivector[F], target Element[F]) (Multivector[F], bool) {
	t := target.Multivector()
	inv, ok := t.TryInverse()
	if !ok {
		return Multivector[F]{}, false
	}
	return mulMM(innerMM(a, t), inv), true
}

func reject[F Float](a Multivector[F], target Element[F]) (Multivector[F], bool) {
	t := target.Multivector()
	inv, ok := t.TryInverse()
	if !ok {
		return Multivector[F]{}, false
	}
	return mulMM(wedgeMM(a, t), inv), true
}

func reflection[F Float](a Multivector[F], target Element[F]) (Multivector[F], bool) {
	t := target.Multivector()
	inv, ok := t.TryInverse()
	if !ok {
		return Multivector[F]{}, false
	}
	return mulMM(mulMM(inv, a), t), true
}

// Vector

// Rotate returns reverse(r)*a*r.
func (a Vector[F]) Rotate(r Rotor[F]) Vector[F] { return rotate(a.Multivector(), r).v }

// TryProject returns (a|t)*t⁻¹, the part of a lying in blade t; false if t
// has no inverse.
func (a Vector[F]) TryProject(t Element[F]) (Vector[F], bool) {
	m, ok := project(a.Multivector(), t)
	return m.v, ok
}

// TryReject returns (a^t)*t⁻¹, the part of a orthogonal to blade t; false if
// t has no inverse.
func (a Vector[F]) TryReject(t Element[F]) (Vector[F], bool) {
	m, ok := reject(a.Multivector(), t)
	return m.v, ok
}

// TryReflect returns t⁻¹*a*t; false if t has no inverse.
func (a Vector[F]) TryReflect(t Element[F]) (Vector[F], bool) {
	m, ok := reflection(a.Multivector(), t)
	return m.v, ok
}

// Bivector

func (a Bivector[F]) Rotate(r Rotor[F]) Bivector[F] { return rotate(a.Multivector(), r).b }

func (a Bivector[F]) TryProject(t Element[F]) (Bivector[F], bool) {
	m, ok := project(a.Multivector(), t)
	return m.b, ok
}

func (a Bivector[F]) TryReject(t Element[F]) (Bivector[F], bool) {
	m, ok := reject(a.Multivector(), t)
	return m.b, ok
}

func (a Bivector[F]) TryReflect(t Element[F]) (Bivector[F], bool) {
	m, ok := reflection(a.Multivector(), t)
	return m.b, ok
}

// Trivector; rotations leave the pseudoscalar fixed.

func (a Trivector[F]) Rotate(r Rotor[F]) Trivector[F] { return rotate(a.Multivector(), r).t }

func (a Trivector[F]) TryProject(t Element[F]) (Trivector[F], bool) {
	m, ok := project(a.Multivector(), t)
	return m.t, ok
}

func (a Trivector[F]) TryReject(t Element[F]) (Trivector[F], bool) {
	m, ok := reject(a.Multivector(), t)
	return m.t, ok
}

func (a Trivector[F]) TryReflect(t Element[F]) (Trivector[F], bool) {
	m, ok := reflection(a.Multivector(), t)
	return m.t, ok
}

// Multivector

func (a Multivector[F]) Rotate(r Rotor[F]) Multivector[F] { return rotate(a, r) }

func (a Multivector[F]) TryProject(t Element[F]) (Multivector[F], bool) { return project(a, t) }

func (a Multivector[F]) TryReject(t Element[F]) (Multivector[F], bool) { return reject(a, t) }

func (a Multivector[F]) TryReflect(t Element[F]) (Multivector[F], bool) { return reflection(a, t) }
