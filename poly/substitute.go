package poly

import "math/big"

// Substitute evaluates the polynomial at x=a, y=b, returning the exact
// integer result. This is the only place exponentiation of the
// substitution values happens, so it is also the only place that needs
// big.Int.Exp.
func (p *Polynomial) Substitute(a, b *big.Int) *big.Int {
	n := p.Normalize()
	sum := new(big.Int)
	term := new(big.Int)
	powX := new(big.Int)
	powY := new(big.Int)
	for m, c := range n.terms[0].p {
		powX.Exp(a, big.NewInt(int64(m.x)), nil)
		powY.Exp(b, big.NewInt(int64(m.y)), nil)
		term.Mul(c, powX)
		term.Mul(term, powY)
		sum.Add(sum, term)
	}
	return sum
}

// SubstituteInt64 is a convenience wrapper for the common case of
// evaluating at small integer (x,y), as the CLI's --eval flag does.
func (p *Polynomial) SubstituteInt64(x, y int64) *big.Int {
	return p.Substitute(big.NewInt(x), big.NewInt(y))
}
