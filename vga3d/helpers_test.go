package vga3d

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"dasa.cc/vga/gma"
	"github.com/stretchr/testify/assert"
)

const StandardTol = 1e-6

// arb is a generator of eight coefficients in [-10, 10); the accessors below
// read it as any one entity so one quick argument serves every grade.
type arb [8]float64

func (arb) Generate(r *rand.Rand, size int) reflect.Value {
	var a arb
	for i := range a {
		a[i] = r.Float64()*20 - 10
	}
	return reflect.ValueOf(a)
}

func (a arb) mv() Multivector[float64] {
	return NewMultivectorComponents(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
}

func (a arb) vec() Vector[float64]    { return Vector[float64]{a[1], a[2], a[3]} }
func (a arb) biv() Bivector[float64]  { return Bivector[float64]{a[4], a[5], a[6]} }
func (a arb) tri() Trivector[float64] { return Trivector[float64]{a[7]} }

// rotor keeps the half angle under two radians.
func (a arb) rotor() Rotor[float64] { return NewRotor(a.biv().Scale(0.1)) }

func near(x, y float64) bool {
	return math.Abs(x-y) <= 1e-9*(1+math.Abs(x)+math.Abs(y))
}

func nearMV(a, b Multivector[float64]) bool {
	x, y := a.Components(), b.Components()
	for i := range x {
		if !near(x[i], y[i]) {
			return false
		}
	}
	return true
}

func check(t *testing.T, f any) {
	t.Helper()
	if err := quick.Check(f, &quick.Config{MaxCount: 1 << 10}); err != nil {
		t.Fatal(err)
	}
}

func TolAssertEqualMV(t *testing.T, tol float64, want, have Multivector[float64]) {
	t.Helper()
	x, y := want.Components(), have.Components()
	for i := range x {
		assert.InDelta(t, x[i], y[i], tol, "component %d: want %v, have %v", i, want, have)
	}
}

func TolAssertEqualVec(t *testing.T, tol float64, want, have Vector[float64]) {
	t.Helper()
	assert.InDelta(t, want.e1, have.e1, tol, "e1: want %v, have %v", want, have)
	assert.InDelta(t, want.e2, have.e2, tol, "e2: want %v, have %v", want, have)
	assert.InDelta(t, want.e3, have.e3, tol, "e3: want %v, have %v", want, have)
}

// toGMA converts to the reference algebra, which stores e1^e3 in place of
// e31.
func toGMA(a Multivector[float64]) gma.Multivector[float64] {
	return gma.Simplify(gma.Multivector[float64]{
		{Scalar: a.s, Basis: 0},
		{Scalar: a.v.e1, Basis: gma.E1},
		{Scalar: a.v.e2, Basis: gma.E2},
		{Scalar: a.v.e3, Basis: gma.E3},
		{Scalar: a.b.e12, Basis: gma.E12},
		{Scalar: -a.b.e31, Basis: gma.E13},
		{Scalar: a.b.e23, Basis: gma.E23},
		{Scalar: a.t.e123, Basis: gma.E123},
	})
}

func fromGMA(a gma.Multivector[float64]) Multivector[float64] {
	return NewMultivectorComponents(
		a.Scalar(),
		a.ScalarOf(gma.E1), a.ScalarOf(gma.E2), a.ScalarOf(gma.E3),
		a.ScalarOf(gma.E12), -a.ScalarOf(gma.E13), a.ScalarOf(gma.E23),
		a.ScalarOf(gma.E123),
	)
}
