package poly

import "math/big"

// Add returns p+q, concatenating terms without eagerly expanding them.
// Normalize (called lazily by Substitute, Serialize, and tests that need
// to compare values) is what actually collapses duplicate monomials.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	out := &Polynomial{terms: make([]term, 0, len(p.terms)+len(q.terms))}
	for _, t := range p.terms {
		out.terms = append(out.terms, term{mono: t.mono, p: t.p.clone()})
	}
	for _, t := range q.terms {
		out.terms = append(out.terms, term{mono: t.mono, p: t.p.clone()})
	}
	return out
}

// MulMonomial returns xᵃyᵇ·p, distributing the monomial across every term
// without touching any term's small polynomial.
func (p *Polynomial) MulMonomial(a, b int) *Polynomial {
	m := monomial{a, b}
	out := &Polynomial{terms: make([]term, len(p.terms))}
	for i, t := range p.terms {
		out.terms[i] = term{mono: t.mono.mul(m), p: t.p.clone()}
	}
	return out
}

// MulPoly returns p*q in factored form: every pair of terms contributes
// one new term whose monomial is the product of the two prefixes and whose
// small polynomial is the ordinary (expanded) product of the two small
// polynomials. Both inputs' small polynomials are expected to stay tiny,
// so this product is cheap even though it is quadratic in term count.
func (p *Polynomial) MulPoly(q *Polynomial) *Polynomial {
	out := &Polynomial{terms: make([]term, 0, len(p.terms)*len(q.terms))}
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			out.terms = append(out.terms, term{mono: tp.mono.mul(tq.mono), p: mulSmall(tp.p, tq.p)})
		}
	}
	return out
}

func mulSmall(a, b small) small {
	out := make(small, len(a)*len(b))
	tmp := new(big.Int)
	for ma, ca := range a {
		for mb, cb := range b {
			tmp.Mul(ca, cb)
			out.addCoeff(ma.mul(mb), tmp)
		}
	}
	return out
}

// Normalize collapses every term into a single canonical form: one term
// per distinct xᵃyᵇ·(small-poly-exponent) monomial after full expansion,
// with zero coefficients dropped and a fixed xᵃyᵇ prefix convention (the
// monomial folded entirely into the small polynomial's keys, prefix
// (0,0)). This is what Substitute, Serialize, and equality checks operate
// on; ordinary recursion never needs to call it.
func (p *Polynomial) Normalize() *Polynomial {
	flat := make(small)
	for _, t := range p.terms {
		for m, c := range t.p {
			flat.addCoeff(t.mono.mul(m), c)
		}
	}
	return &Polynomial{terms: []term{{mono: monomial{0, 0}, p: flat}}}
}

// IsZero reports whether the polynomial is the zero polynomial once fully
// expanded.
func (p *Polynomial) IsZero() bool {
	n := p.Normalize()
	return len(n.terms[0].p) == 0
}

// Equal reports whether p and q represent the same polynomial, regardless
// of how their terms happen to be factored.
func (p *Polynomial) Equal(q *Polynomial) bool {
	return p.Add(q.negate()).IsZero()
}

func (p *Polynomial) negate() *Polynomial {
	out := &Polynomial{terms: make([]term, len(p.terms))}
	neg1 := big.NewInt(-1)
	for i, t := range p.terms {
		cp := t.p.clone()
		for _, c := range cp {
			c.Mul(c, neg1)
		}
		out.terms[i] = term{mono: t.mono, p: cp}
	}
	return out
}

// Scale returns c·p, multiplying every coefficient by c. Used by the
// chromatic/flow derivation to apply the (-1)^k sign prefix from the
// substitution identities.
func (p *Polynomial) Scale(c *big.Int) *Polynomial {
	out := &Polynomial{terms: make([]term, len(p.terms))}
	for i, t := range p.terms {
		sm := make(small, len(t.p))
		for m, coef := range t.p {
			sm[m] = new(big.Int).Mul(coef, c)
		}
		out.terms[i] = term{mono: t.mono, p: sm}
	}
	return out
}

// SwapXY returns q such that q(x,y) = p(y,x), exchanging the roles of the
// two variables. Flow's substitution identity needs T's y-argument fixed
// to 1-k with x fixed to 0; swapping first lets both derivations share one
// code path (see engine's ChromaticFromTutte and FlowFromTutte).
func (p *Polynomial) SwapXY() *Polynomial {
	n := p.Normalize().terms[0].p
	sm := make(small, len(n))
	for m, c := range n {
		sm[monomial{m.y, m.x}] = new(big.Int).Set(c)
	}
	return &Polynomial{terms: []term{{mono: monomial{0, 0}, p: sm}}}
}

// ProjectY0 returns the terms of p with y-exponent exactly 0, i.e. p(x,0),
// kept as a polynomial in x rather than evaluated to a number.
func (p *Polynomial) ProjectY0() *Polynomial {
	n := p.Normalize().terms[0].p
	sm := make(small)
	for m, c := range n {
		if m.y == 0 {
			sm[monomial{m.x, 0}] = new(big.Int).Set(c)
		}
	}
	return &Polynomial{terms: []term{{mono: monomial{0, 0}, p: sm}}}
}

// ComposeX returns p with x replaced by the polynomial lin, i.e. p(lin(x,y),y).
// lin is expected to not involve y when used on a y-projected p (the only
// way engine calls it), but the implementation itself is a general
// substitution: every xᵃyᵇ term becomes lin^a · yᵇ, scaled by its
// coefficient. Exponents involved are small (bounded by edge counts), so
// the repeated-squaring a compose would buy isn't worth the complexity.
func (p *Polynomial) ComposeX(lin *Polynomial) *Polynomial {
	n := p.Normalize().terms[0].p
	maxExp := 0
	for m := range n {
		if m.x > maxExp {
			maxExp = m.x
		}
	}
	pows := make([]*Polynomial, maxExp+1)
	pows[0] = One()
	for i := 1; i <= maxExp; i++ {
		pows[i] = pows[i-1].MulPoly(lin)
	}
	result := Zero()
	for m, c := range n {
		term := pows[m.x].MulMonomial(0, m.y).Scale(c)
		result = result.Add(term)
	}
	return result
}
