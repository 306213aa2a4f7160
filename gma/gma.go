// Package gma provides naive primitives for geometric algebra over Cl(3,0,0).
//
// Blades are addressed by a bitmap of independent basis vectors and
// multiplied through an embedded sign table, so every product here is
// table driven rather than written out per grade. This makes gma slow but
// hard to get wrong; it serves as the reference for closed form products.
package gma

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

/*

 basis    bitmap
 scalar   000
 e1       001
 e2       010
 e1^e2    011
 e3       100
 e1^e3    101
 e2^e3    110
 e1^e2^e3 111

Canonical order is ascending, so the plane e3^e1 is stored as -1 e1^e3.

*/

const (
	E1   = uint8(1)
	E2   = uint8(1 << 1)
	E3   = uint8(1 << 2)
	E12  = E1 ^ E2
	E13  = E1 ^ E3
	E23  = E2 ^ E3
	E123 = E1 ^ E2 ^ E3
)

// table holds the sign of the product of canonical basis blades a and b.
var table [8][8]int8

func init() {
	for a := uint8(0); a < 8; a++ {
		for b := uint8(0); b < 8; b++ {
			table[a][b] = signOf(a, b)
		}
	}
}

// signOf counts the swaps needed to bring the vectors of ab into canonical
// order; assumes an orthonormal euclidean metric.
func signOf(a, b uint8) int8 {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Blade is a weighted basis blade.
type Blade[F constraints.Float] struct {
	Scalar F

	// Basis is a bitmap of independent vectors, if any; vectors must be in
	// canonical ordering so account for sign changes of Scalar when specifying.
	Basis uint8
}

// I3 returns the unit pseudoscalar e1^e2^e3.
func I3[F constraints.Float]() Blade[F] { return Blade[F]{1, E123} }

// Grade returns the number of independent vectors of Blade.
func (a Blade[F]) Grade() int {
	return bits.OnesCount8(a.Basis)
}

// Wedge returns the outer product of a^b; a zero product if a and b are
// dependent, otherwise the geometric product.
func (a Blade[F]) Wedge(b Blade[F]) Blade[F] {
	if a.Basis&b.Basis != 0 {
		return Blade[F]{}
	}
	return a.Mul(b)
}

// Mul returns the geometric product of ab; dependent vectors annihilate to
// the metric, here always 1.
func (a Blade[F]) Mul(b Blade[F]) Blade[F] {
	return Blade[F]{F(table[a.Basis&7][b.Basis&7]) * a.Scalar * b.Scalar, a.Basis ^ b.Basis}
}

// Inner returns the grade |r-s| part of ab, zero if ab has another grade.
func (a Blade[F]) Inner(b Blade[F]) Blade[F] {
	c := a.Mul(b)
	d := a.Grade() - b.Grade()
	if d < 0 {
		d = -d
	}
	if c.Grade() != d {
		return Blade[F]{}
	}
	return c
}

// Lc returns the left contraction of a onto b.
func (a Blade[F]) Lc(b Blade[F]) Blade[F] {
	if a.Grade() <= b.Grade() && a.Basis&b.Basis == a.Basis {
		return a.Mul(b)
	}
	return Blade[F]{}
}

func (a Blade[F]) Norm() F {
	return F(math.Sqrt(float64(a.NormSq())))
}

func (a Blade[F]) NormSq() F {
	return a.Mul(a.Rev()).Scalar
}

func (a Blade[F]) Inverse() Blade[F] {
	n := a.NormSq()
	a = a.Rev()
	a.Scalar /= n
	return a
}

func (a Blade[F]) Rev() Blade[F] {
	if a.Grade()%4 > 1 {
		a.Scalar *= -1
	}
	return a
}

func (a Blade[F]) Invol() Blade[F] {
	if a.Grade()%2 == 1 {
		a.Scalar *= -1
	}
	return a
}

// Conj is the composition of Rev and Invol.
func (a Blade[F]) Conj() Blade[F] {
	if x := a.Grade() % 4; x == 1 || x == 2 {
		a.Scalar *= -1
	}
	return a
}

func (a Blade[F]) String() string {
	if a.Basis == 0 {
		return fmt.Sprint(a.Scalar)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v*", a.Scalar)
	for i, sep := 0, ""; i < 3; i++ {
		if a.Basis&(1<<i) != 0 {
			fmt.Fprintf(&sb, "%se%v", sep, i+1)
			sep = "^"
		}
	}
	return sb.String()
}

// Multivector is a sum of blades, not necessarily simplified.
type Multivector[F constraints.Float] []Blade[F]

func (a Multivector[F]) Wedge(b Multivector[F]) Multivector[F] {
	return a.each(b, Blade[F].Wedge)
}

func (a Multivector[F]) Mul(b Multivector[F]) Multivector[F] {
	return a.each(b, Blade[F].Mul)
}

func (a Multivector[F]) Inner(b Multivector[F]) Multivector[F] {
	return a.each(b, Blade[F].Inner)
}

func (a Multivector[F]) Lc(b Multivector[F]) Multivector[F] {
	return a.each(b, Blade[F].Lc)
}

func (a Multivector[F]) each(b Multivector[F], op func(Blade[F], Blade[F]) Blade[F]) Multivector[F] {
	var c Multivector[F]
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, op(b0, b1))
		}
	}
	return Simplify(c)
}

func (a Multivector[F]) Add(b Multivector[F]) Multivector[F] {
	c := make(Multivector[F], len(a))
	copy(c, a)
	return Simplify(append(c, b...))
}

func (a Multivector[F]) Scale(s F) Multivector[F] {
	b := make(Multivector[F], len(a))
	for i, v := range a {
		v.Scalar *= s
		b[i] = v
	}
	return b
}

func (a Multivector[F]) Neg() Multivector[F] { return a.Scale(-1) }

func (a Multivector[F]) Rev() Multivector[F] { return a.apply(Blade[F].Rev) }

func (a Multivector[F]) Invol() Multivector[F] { return a.apply(Blade[F].Invol) }

func (a Multivector[F]) Conj() Multivector[F] { return a.apply(Blade[F].Conj) }

func (a Multivector[F]) apply(op func(Blade[F]) Blade[F]) Multivector[F] {
	b := make(Multivector[F], len(a))
	for i, v := range a {
		b[i] = op(v)
	}
	return b
}

// Dual returns a multiplied by the pseudoscalar.
func (a Multivector[F]) Dual() Multivector[F] {
	return a.Mul(Multivector[F]{I3[F]()})
}

// Regressive returns ((-a*)^(-b*))*.
func (a Multivector[F]) Regressive(b Multivector[F]) Multivector[F] {
	return a.Dual().Neg().Wedge(b.Dual().Neg()).Dual()
}

// Grade returns the blades of a with grade k.
func (a Multivector[F]) Grade(k int) Multivector[F] {
	var b Multivector[F]
	for _, v := range a {
		if v.Grade() == k {
			b = append(b, v)
		}
	}
	return b
}

func (a Multivector[F]) NormSq() F { return a.Mul(a.Rev()).Scalar() }

func (a Multivector[F]) Norm() F { return F(math.Sqrt(float64(a.NormSq()))) }

// Inverse divides the reverse of a by its squared norm; exact for blades
// and versors.
func (a Multivector[F]) Inverse() Multivector[F] {
	return a.Rev().Scale(1 / a.NormSq())
}

func (a Multivector[F]) ScalarOf(basis uint8) F {
	var x F
	for _, v := range a {
		if v.Basis == basis {
			x += v.Scalar
		}
	}
	return x
}

func (a Multivector[F]) Scalar() F { return a.ScalarOf(0) }

func (a Multivector[F]) String() string {
	if len(a) == 0 {
		return "0"
	}
	s := make([]string, len(a))
	for i, v := range a {
		s[i] = v.String()
	}
	return strings.Join(s, " + ")
}

// Simplify sums blades sharing a basis, drops zeros and sorts by basis.
func Simplify[F constraints.Float](a Multivector[F]) Multivector[F] {
	m := make(map[uint8]F)
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}

	var b Multivector[F]
	for k, v := range m {
		if v != 0 {
			b = append(b, Blade[F]{Scalar: v, Basis: k})
		}
	}

	sort.Slice(b, func(i, j int) bool {
		return b[i].Basis < b[j].Basis
	})
	return b
}
