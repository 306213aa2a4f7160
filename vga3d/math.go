package vga3d

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar field every entity is parameterized over.
type Float interface {
	constraints.Float
}

// float32 values take the math32 kernels; everything else goes through float64.

func sqrt[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sqrt(v))
	}
	return F(math.Sqrt(float64(x)))
}

func sin[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sin(v))
	}
	return F(math.Sin(float64(x)))
}

func cos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Cos(v))
	}
	return F(math.Cos(float64(x)))
}

func acos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Acos(v))
	}
	return F(math.Acos(float64(x)))
}

func abs[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Abs(v))
	}
	return F(math.Abs(float64(x)))
}

// divisor panics on an exact zero; dividing a grade by a raw zero scalar is a usage error.
func divisor[F Float](op string, s F) F {
	if s == 0 {
		panic("vga3d: " + op + " division by zero scalar")
	}
	return 1 / s
}
