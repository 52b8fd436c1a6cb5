package poly

import "math/big"

var big1 = big.NewInt(1)

// Zero is the additive identity, the empty sum of terms.
func Zero() *Polynomial {
	return &Polynomial{}
}

// One is the multiplicative identity, x⁰y⁰.
func One() *Polynomial {
	return &Polynomial{terms: []term{{mono: monomial{0, 0}, p: small{{0, 0}: big.NewInt(1)}}}}
}

// X returns xᵏ.
func X(k int) *Polynomial {
	return &Polynomial{terms: []term{{mono: monomial{k, 0}, p: small{{0, 0}: big.NewInt(1)}}}}
}

// Y returns yᵏ.
func Y(k int) *Polynomial {
	return &Polynomial{terms: []term{{mono: monomial{0, k}, p: small{{0, 0}: big.NewInt(1)}}}}
}

// YShift returns Y(a,b) = Σ_{i=0}^{b} y^(a+i). It is always a single
// factored term: the monomial yᵃ times a small polynomial with b+1
// consecutive powers of y, each coefficient 1. b<0 returns Zero (an empty
// sum).
func YShift(a, b int) *Polynomial {
	if b < 0 {
		return Zero()
	}
	p := make(small, b+1)
	for i := 0; i <= b; i++ {
		p[monomial{0, i}] = new(big.Int).Set(big1)
	}
	return &Polynomial{terms: []term{{mono: monomial{0, a}, p: p}}}
}
