package vga3d

import "fmt"

// Quaternion is w + xi + yj + zk with i² = j² = k² = ijk = -1.
//
// Quaternions are the even subalgebra under
//
//	i = -e23, j = -e31, k = -e12
//
// so the Hamilton product of two quaternions is the geometric product of
// the corresponding scalar plus bivector elements.
type Quaternion[F Float] struct {
	w, i, j, k F
}

func NewQuaternion[F Float](w, i, j, k F) Quaternion[F] { return Quaternion[F]{w, i, j, k} }

func (q Quaternion[F]) W() F { return q.w }
func (q Quaternion[F]) I() F { return q.i }
func (q Quaternion[F]) J() F { return q.j }
func (q Quaternion[F]) K() F { return q.k }

func (q Quaternion[F]) Add(p Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{q.w + p.w, q.i + p.i, q.j + p.j, q.k + p.k}
}

func (q Quaternion[F]) Sub(p Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{q.w - p.w, q.i - p.i, q.j - p.j, q.k - p.k}
}

func (q Quaternion[F]) Scale(s F) Quaternion[F] {
	return Quaternion[F]{q.w * s, q.i * s, q.j * s, q.k * s}
}

func (q Quaternion[F]) Neg() Quaternion[F] { return q.Scale(-1) }

// Mul returns the Hamilton product qp.
func (q Quaternion[F]) Mul(p Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{
		q.w*p.w - q.i*p.i - q.j*p.j - q.k*p.k,
		q.w*p.i + q.i*p.w + q.j*p.k - q.k*p.j,
		q.w*p.j - q.i*p.k + q.j*p.w + q.k*p.i,
		q.w*p.k + q.i*p.j - q.j*p.i + q.k*p.w,
	}
}

func (q Quaternion[F]) Conjugate() Quaternion[F] { return Quaternion[F]{q.w, -q.i, -q.j, -q.k} }

func (q Quaternion[F]) NormSquared() F { return q.w*q.w + q.i*q.i + q.j*q.j + q.k*q.k }

func (q Quaternion[F]) Norm() F { return sqrt(q.NormSquared()) }

func (q Quaternion[F]) TryInverse() (Quaternion[F], bool) {
	n := q.NormSquared()
	if n == 0 {
		return Quaternion[F]{}, false
	}
	return q.Conjugate().Scale(1 / n), true
}

// TryNormalize returns q/|q|; false if q is zero.
func (q Quaternion[F]) TryNormalize() (UnitQuaternion[F], bool) {
	n := q.Norm()
	if n == 0 {
		return UnitQuaternion[F]{}, false
	}
	return UnitQuaternion[F]{q.Scale(1 / n)}, true
}

// Multivector returns the scalar plus bivector element q maps to.
func (q Quaternion[F]) Multivector() Multivector[F] {
	return Multivector[F]{s: q.w, b: Bivector[F]{-q.k, -q.j, -q.i}}
}

func (q Quaternion[F]) String() string {
	return fmt.Sprintf("%v + %vi + %vj + %vk", q.w, q.i, q.j, q.k)
}

// UnitQuaternion is a quaternion of norm one.
type UnitQuaternion[F Float] struct {
	q Quaternion[F]
}

// TryNewUnitQuaternion returns cos(halfAngle) + sin(halfAngle)(xi + yj + zk)
// for the normalized axis (x, y, z); false if axis is zero.
func TryNewUnitQuaternion[F Float](halfAngle F, axis Vector[F]) (UnitQuaternion[F], bool) {
	u, ok := axis.TryNormalize()
	if !ok {
		return UnitQuaternion[F]{}, false
	}
	s := sin(halfAngle)
	return UnitQuaternion[F]{Quaternion[F]{cos(halfAngle), u.e1 * s, u.e2 * s, u.e3 * s}}, true
}

func IdentityUnitQuaternion[F Float]() UnitQuaternion[F] {
	return UnitQuaternion[F]{Quaternion[F]{w: 1}}
}

func (q UnitQuaternion[F]) W() F { return q.q.w }
func (q UnitQuaternion[F]) I() F { return q.q.i }
func (q UnitQuaternion[F]) J() F { return q.q.j }
func (q UnitQuaternion[F]) K() F { return q.q.k }

func (q UnitQuaternion[F]) Quaternion() Quaternion[F] { return q.q }

// Mul returns the Hamilton product qp, renormalized like Rotor.MulRotor.
func (q UnitQuaternion[F]) Mul(p UnitQuaternion[F]) UnitQuaternion[F] {
	r := q.q.Mul(p.q)
	if u, ok := r.TryNormalize(); ok {
		return u
	}
	return UnitQuaternion[F]{r}
}

func (q UnitQuaternion[F]) Conjugate() UnitQuaternion[F] { return UnitQuaternion[F]{q.q.Conjugate()} }

// Inverse is the conjugate; unit quaternions always invert.
func (q UnitQuaternion[F]) Inverse() UnitQuaternion[F] { return q.Conjugate() }

func (q UnitQuaternion[F]) Norm() F { return q.q.Norm() }

func (q UnitQuaternion[F]) ToRotor() Rotor[F] {
	return Rotor[F]{q.q.w, Bivector[F]{-q.q.k, -q.q.j, -q.q.i}}
}

func (q UnitQuaternion[F]) Multivector() Multivector[F] { return q.q.Multivector() }

func (q UnitQuaternion[F]) String() string { return q.q.String() }

// ToUnitQuaternion returns the unit quaternion r maps to.
func (r Rotor[F]) ToUnitQuaternion() UnitQuaternion[F] {
	return UnitQuaternion[F]{Quaternion[F]{r.s, -r.b.e23, -r.b.e31, -r.b.e12}}
}
