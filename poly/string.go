package poly

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// String renders a normalized, deterministic debug form such as
// "x^3+3*x^2+2*x+4*x*y+2*y+3*y^2+y^3". ioformat.FormatPolynomial builds the
// CLI's Maple-assignment output on top of the same normalized term list;
// this method exists for tests and ad-hoc debugging.
func (p *Polynomial) String() string {
	n := p.Normalize().terms[0].p
	if len(n) == 0 {
		return "0"
	}
	monos := make([]monomial, 0, len(n))
	for m := range n {
		monos = append(monos, m)
	}
	sort.Slice(monos, func(i, j int) bool {
		if monos[i].x != monos[j].x {
			return monos[i].x > monos[j].x
		}
		return monos[i].y < monos[j].y
	})

	var sb strings.Builder
	for i, m := range monos {
		c := n[m]
		if i > 0 {
			if c.Sign() >= 0 {
				sb.WriteString("+")
			}
		}
		sb.WriteString(termString(c, m))
	}
	return sb.String()
}

func termString(c *big.Int, m monomial) string {
	var parts []string
	abs := c
	if c.Sign() < 0 {
		parts = append(parts, "-")
		abs = new(big.Int).Neg(c)
	}
	factors := make([]string, 0, 3)
	if abs.Cmp(big1) != 0 || (m.x == 0 && m.y == 0) {
		factors = append(factors, abs.String())
	}
	if m.x == 1 {
		factors = append(factors, "x")
	} else if m.x > 0 {
		factors = append(factors, fmt.Sprintf("x^%d", m.x))
	}
	if m.y == 1 {
		factors = append(factors, "y")
	} else if m.y > 0 {
		factors = append(factors, fmt.Sprintf("y^%d", m.y))
	}
	return strings.Join(parts, "") + strings.Join(factors, "*")
}
