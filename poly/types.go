package poly

import "math/big"

// monomial is xᵃyᵇ, named by its two exponents.
type monomial struct {
	x, y int
}

func (m monomial) mul(n monomial) monomial {
	return monomial{m.x + n.x, m.y + n.y}
}

// small is a compact sparse polynomial: exponent pair -> coefficient. It
// is the "small" half of a factored term — expected to stay tiny (a
// handful of terms) even when the monomial prefix carries large exponents.
type small map[monomial]*big.Int

func (s small) clone() small {
	out := make(small, len(s))
	for k, v := range s {
		out[k] = new(big.Int).Set(v)
	}
	return out
}

func (s small) addCoeff(m monomial, c *big.Int) {
	if cur, ok := s[m]; ok {
		cur.Add(cur, c)
		if cur.Sign() == 0 {
			delete(s, m)
		}
		return
	}
	if c.Sign() != 0 {
		s[m] = new(big.Int).Set(c)
	}
}

// term is one Mᵢ·Pᵢ summand: mono is Mᵢ, p is Pᵢ.
type term struct {
	mono monomial
	p    small
}

// Polynomial is Σ Mᵢ·Pᵢ over ℤ[x,y].
type Polynomial struct {
	terms []term
}

// Clone returns a deep copy sharing no storage with the receiver.
func (p *Polynomial) Clone() *Polynomial {
	out := &Polynomial{terms: make([]term, len(p.terms))}
	for i, t := range p.terms {
		out.terms[i] = term{mono: t.mono, p: t.p.clone()}
	}
	return out
}
