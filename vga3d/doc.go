// Package vga3d provides the vector geometric algebra of three dimensional
// euclidean space, Cl(3,0,0).
//
// Entities are small immutable values generic over the scalar type:
//
//	Scalar       grade 0
//	Vector       grade 1, e1 e2 e3
//	Bivector     grade 2, e12 e31 e23
//	Trivector    grade 3, e123
//	Multivector  free sum of all grades
//	Rotor        unit scalar + bivector
//
// Note the bivector basis e31, not e13; e31 = -e13.
//
// Binary products are methods on the left operand named by operation and
// right operand type, e.g. a.MulBivector(b) is the geometric product ab,
// a.InnerVector(b) is a|b, a.WedgeTrivector(b) is a^b and
// a.RegressiveBivector(b) is a&b. Methods taking a Scalar operand take a
// raw F. Products that are identically zero in three dimensions return a
// raw zero F.
//
// Operations that may fail on degenerate input, such as inverting a null
// element, return a second boolean result. Dividing by an exact zero raw
// scalar panics.
package vga3d
