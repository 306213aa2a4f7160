package gma

import (
	"math"
	"testing"
)

type mv = Multivector[float64]

var (
	e1 = Blade[float64]{1, E1}
	e2 = Blade[float64]{1, E2}
	e3 = Blade[float64]{1, E3}
)

func TestBlade(t *testing.T) {
	A := e1.Wedge(e2)
	B := e2.Wedge(e1)
	C := e3.Wedge(e1)
	D := e3

	t.Logf("grade(e1^e2) = %v", A.Grade())
	t.Logf("       e1^e2 = %08b", A.Basis)
	t.Logf("grade(e2^e1) = %v", B.Grade())
	t.Logf("grade(e3^e1) = %v", C.Grade())
	t.Logf("   grade(e3) = %v", D.Grade())

	if B.Scalar != -1 || B.Basis != E12 {
		t.Errorf("e2^e1: want -1*e1^e2, have %s", B)
	}
	if C.Scalar != -1 || C.Basis != E13 {
		t.Errorf("e3^e1: want -1*e1^e3, have %s", C)
	}
	if x := A.Wedge(C); x != (Blade[float64]{}) {
		t.Errorf("(e1^e2)^(e3^e1): want 0, have %s", x)
	}
	if x := B.Wedge(D); x.Scalar != -1 || x.Basis != E123 {
		t.Errorf("(e2^e1)^e3: want -1*e1^e2^e3, have %s", x)
	}

	// the geometric product of a basis vector with itself evaluates
	// to a scalar derived from the metric:
	//  e3e3 = e3 dot e3 + e3^e3 = Q[e3, e3]
	if x := D.Mul(D); x.Scalar != 1 || x.Basis != 0 {
		t.Errorf("e3e3: want 1, have %s", x)
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		a, b  uint8
		basis uint8
		sign  int8
	}{
		{E1, E2, E12, 1},
		{E2, E1, E12, -1},
		{E3, E1, E13, -1},
		{E2, E3, E23, 1},
		{E12, E12, 0, -1},
		{E13, E13, 0, -1},
		{E123, E123, 0, -1},
		{E1, E23, E123, 1},
		{E2, E13, E123, -1},
		{E12, E3, E123, 1},
		{E12, E23, E13, 1},
		{E23, E12, E13, -1},
	}
	for _, tt := range tests {
		c := Blade[float64]{1, tt.a}.Mul(Blade[float64]{1, tt.b})
		if c.Basis != tt.basis || c.Scalar != float64(tt.sign) {
			t.Errorf("%03b * %03b: want %v*%03b, have %s", tt.a, tt.b, tt.sign, tt.basis, c)
		}
	}
}

func TestMultiply(t *testing.T) {
	e11 := e1.Mul(e1)
	if e11.Basis != 0 || e11.Scalar != 1 {
		t.Errorf("expected scalar 1, have %s", e11)
	}

	e12 := e1.Mul(e2)
	if e12.Basis != E12 || e12.Scalar != 1 {
		t.Errorf("expected bivector, have %s", e12)
	}

	e12e12 := e12.Mul(e12)
	if e12e12.Basis != 0 || e12e12.Scalar != -1 {
		t.Errorf("expected scalar -1, have %s", e12e12)
	}

	if x := e12.Mul(e1); x.Basis != E2 || x.Scalar != -1 {
		t.Errorf("e12e1: want -e2, have %s", x)
	}

	// (e1 + e2)(e2) = e1e2 + 1
	a := mv{{1, E1}, {1, E2}}
	b := mv{{1, E2}}
	ab := a.Mul(b)
	if len(ab) != 2 || ab.Scalar() != 1 || ab.ScalarOf(E12) != 1 {
		t.Errorf("ab: want 1 + e1^e2, have %s", ab)
	}

	// division; ab/b = a for invertible b
	x := ab.Mul(b.Inverse())
	if x.ScalarOf(E1) != 1 || x.ScalarOf(E2) != 1 || len(x) != 2 {
		t.Errorf("ab/b: want %s, have %s", a, x)
	}

	for _, d := range []Blade[float64]{{3, E1}, {5, E12}, {7, E123}} {
		if x := d.Inverse().Mul(d); x.Basis != 0 || math.Abs(x.Scalar-1) > 1e-12 {
			t.Errorf("%s: d⁻¹d want 1, have %s", d, x)
		}
	}
}

func TestDual(t *testing.T) {
	b := mv{{2, E1}, {4, E2}, {8, E3}}
	bD := b.Dual()

	// e1 e123 = e23, e2 e123 = -e13, e3 e123 = e12
	if bD.ScalarOf(E23) != 2 || bD.ScalarOf(E13) != -4 || bD.ScalarOf(E12) != 8 {
		t.Errorf("b*: have %s", bD)
	}

	// (b*)* = -b since e123² = -1
	bDD := bD.Dual()
	for _, v := range b {
		if x := bDD.ScalarOf(v.Basis); x != -v.Scalar {
			t.Errorf("(b*)*: want %v at %03b, have %v", -v.Scalar, v.Basis, x)
		}
	}

	A := mv{e3}
	B := mv{e1}
	t.Log("(A^B)* = A](B*)")
	t.Logf("(A^B)* = %s", A.Wedge(B).Dual())
	t.Logf("A](B*) = %s", A.Lc(B.Dual()))
}

func TestContraction(t *testing.T) {
	a := Blade[float64]{2, 0}
	A, B, C := e1, e2, I3[float64]()

	// a]B = aB
	if v0, v1 := a.Lc(B), a.Mul(B); v0 != v1 {
		t.Errorf("want: a]B = aB\na]B = %s\n aB = %s", v0, v1)
	}

	// B]a = 0
	if v0 := B.Lc(a); v0 != (Blade[float64]{}) {
		t.Errorf("want: B]a = 0\n%s", v0)
	}

	// (A^B)]C = A](B]C)
	if v0, v1 := A.Wedge(B).Lc(C), A.Lc(B.Lc(C)); v0 != v1 {
		t.Errorf("want: (A^B)]C = A](B]C)\n%s\n%s", v0, v1)
	}
}

func TestInner(t *testing.T) {
	// vector|vector keeps only the scalar
	u := mv{{2, E1}, {3, E2}}
	if x := u.Inner(u); len(x) != 1 || x.Scalar() != 13 {
		t.Errorf("u|u: want 13, have %s", x)
	}

	// vector|pseudoscalar is the whole product
	I := mv{I3[float64]()}
	if x, y := u.Inner(I), u.Mul(I); x.String() != y.String() {
		t.Errorf("u|I: want %s, have %s", y, x)
	}

	// bivector|bivector keeps only the scalar
	B := mv{{1, E12}, {2, E23}}
	C := mv{{3, E12}, {1, E13}}
	if x := B.Inner(C); len(x) != 1 || x.Scalar() != -3 {
		t.Errorf("B|C: want -3, have %s", x)
	}
}

func TestRegressive(t *testing.T) {
	// the e1^e2 and e2^e3 planes meet along e2
	x := mv{{1, E12}}.Regressive(mv{{1, E23}})
	if len(x) != 1 || x.Grade(1) == nil || x.ScalarOf(E2) == 0 {
		t.Errorf("(e1^e2)&(e2^e3): want multiple of e2, have %s", x)
	}

	// a vector and a bivector meet in a scalar
	y := mv{{2, E3}}.Regressive(mv{{3, E12}})
	if len(y) != 1 || y.Scalar() == 0 {
		t.Errorf("e3&e12: want scalar, have %s", y)
	}
}

func TestInvolutions(t *testing.T) {
	a := mv{{1, 0}, {2, E1}, {3, E12}, {4, E123}}
	for name, op := range map[string]func(mv) mv{
		"rev":   mv.Rev,
		"invol": mv.Invol,
		"conj":  mv.Conj,
	} {
		if x := op(op(a)); x.String() != a.String() {
			t.Errorf("%s twice: want %s, have %s", name, a, x)
		}
	}

	// conj = rev(invol(a))
	if x, y := a.Conj(), a.Invol().Rev(); x.String() != y.String() {
		t.Errorf("conj: want %s, have %s", y, x)
	}
}
