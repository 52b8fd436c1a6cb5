// Package poly implements a factored multivariate polynomial over ℤ[x,y]:
// a sum of terms Σ Mᵢ·Pᵢ, each term a monomial xᵃyᵇ multiplying a small
// sparse polynomial. Keeping terms factored rather than eagerly expanding
// every Add/MulMonomial into one flat sparse map is what lets the
// evaluator multiply in a Y(a,b) shift or an x^k bridge factor at every
// level of deletion-contraction without the term count blowing up before
// a caller actually needs a number out of the result.
//
// Coefficient arithmetic uses math/big.Int throughout, the same way
// other_examples/njchilds90-gosymbol uses math/big.Rat for its symbolic
// kernel — see DESIGN.md for why no third-party bignum package was a
// candidate here.
package poly
