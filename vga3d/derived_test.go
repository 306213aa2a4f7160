package vga3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	a := NewVector(2., 0, 3)
	b := NewVector(-2., 0, 4)

	p, ok := a.TryProject(b)
	require.True(t, ok)
	TolAssertEqualVec(t, StandardTol, NewVector(-0.8, 0, 1.6), p)

	r, ok := a.TryReject(b)
	require.True(t, ok)
	TolAssertEqualVec(t, StandardTol, NewVector(2.8, 0, 1.4), r)
	assert.InDelta(t, 0, r.InnerVector(b), StandardTol)

	// onto a plane
	p, ok = NewVector(1., 2, 3).TryProject(NewBivector(1., 0, 0))
	require.True(t, ok)
	TolAssertEqualVec(t, StandardTol, NewVector(1., 2, 0), p)

	_, ok = a.TryProject(ZeroVector[float64]())
	assert.False(t, ok)
	_, ok = a.TryReject(ZeroBivector[float64]())
	assert.False(t, ok)
	_, ok = a.TryReflect(ZeroMultivector[float64]())
	assert.False(t, ok)
}

func TestProjectReject(t *testing.T) {
	check(t, func(x, y arb) bool {
		a := x.vec()
		for _, target := range []Element[float64]{y.vec(), y.biv()} {
			p, ok := a.TryProject(target)
			if !ok {
				return false
			}
			r, ok := a.TryReject(target)
			if !ok {
				return false
			}
			if !nearMV(p.AddVector(r).Multivector(), a.Multivector()) {
				return false
			}
		}
		return true
	})

	// a bivector lies wholly in itself
	check(t, func(x arb) bool {
		b := x.biv()
		p, ok := b.TryProject(b)
		return ok && nearMV(p.Multivector(), b.Multivector())
	})
}

func TestReflect(t *testing.T) {
	v, ok := NewVector(1., 1, 0).TryReflect(NewVector(1., 0, 0))
	require.True(t, ok)
	TolAssertEqualVec(t, StandardTol, NewVector(1., -1, 0), v)

	check(t, func(x, y arb) bool {
		v, ok := x.vec().TryReflect(y.vec())
		if !ok {
			return false
		}
		w, ok := v.TryReflect(y.vec())
		return ok && near(v.Norm(), x.vec().Norm()) &&
			nearMV(w.Multivector(), x.vec().Multivector())
	})
}

func TestMultivectorDerived(t *testing.T) {
	check(t, func(x, y arb) bool {
		m, v := x.mv(), y.vec()
		p, ok := m.TryProject(v)
		if !ok {
			return false
		}
		want, _ := v.TryInverse()
		return nearMV(p, mulMM(innerMM(m, v.Multivector()), want.Multivector()))
	})

	r, _ := TryNewRotor(0.5, NewBivector(1., 1, 0))
	m := NewMultivectorComponents(1., 2, 3, 4, 5, 6, 7, 8)
	TolAssertEqualMV(t, StandardTol, m, m.Rotate(r).Rotate(r.Reverse()))
}
