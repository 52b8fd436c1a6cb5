package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamnemecek/TuttePolynomial/poly"
)

// TestConstructors_SubstituteRoundTrip checks X, Y, YShift against direct
// evaluation.
func TestConstructors_SubstituteRoundTrip(t *testing.T) {
	assert.Equal(t, big.NewInt(8), poly.X(3).SubstituteInt64(2, 5))
	assert.Equal(t, big.NewInt(25), poly.Y(2).SubstituteInt64(2, 5))
	assert.Equal(t, big.NewInt(1), poly.One().SubstituteInt64(2, 5))
	assert.Equal(t, big.NewInt(0), poly.Zero().SubstituteInt64(2, 5))
}

// TestYShift_MatchesGeometricSum verifies Y(a,b) = Σ_{i=0}^{b} y^(a+i) by
// comparing against a manually summed polynomial.
func TestYShift_MatchesGeometricSum(t *testing.T) {
	shift := poly.YShift(1, 2) // y + y^2 + y^3
	manual := poly.Y(1).Add(poly.Y(2)).Add(poly.Y(3))
	assert.True(t, shift.Equal(manual))
	assert.Equal(t, big.NewInt(3+9+27), shift.SubstituteInt64(0, 3))
}

// TestAdd_MulMonomial_MulPoly exercises the arithmetic operations against
// direct substitution, which is independent of how terms are factored.
func TestAdd_MulMonomial_MulPoly(t *testing.T) {
	p := poly.X(2).Add(poly.Y(1)) // x^2 + y
	q := poly.X(1)                // x

	sum := p.Add(q)
	assert.Equal(t, big.NewInt(4+3+2), sum.SubstituteInt64(2, 3))

	shifted := p.MulMonomial(1, 0) // x*(x^2+y) = x^3 + x*y
	assert.Equal(t, big.NewInt(8+6), shifted.SubstituteInt64(2, 3))

	prod := p.MulPoly(q) // (x^2+y)*x = x^3 + x*y
	assert.True(t, prod.Equal(shifted))
}

// TestEqual_IgnoresFactoring confirms two differently-factored
// representations of the same polynomial compare equal.
func TestEqual_IgnoresFactoring(t *testing.T) {
	a := poly.X(1).Add(poly.X(1)).Add(poly.Y(1)) // x+x+y
	b := poly.X(1).MulMonomial(0, 0).Add(poly.X(1)).Add(poly.Y(1))
	c := poly.Y(1).Add(poly.X(1)).Add(poly.X(1))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.False(t, a.Equal(poly.X(1).Add(poly.Y(1))))
}

// TestSerializeDeserialize_RoundTrip checks that the cache's in-arena
// encoding survives a round trip, including negative coefficients.
func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	mixed := poly.X(3).Add(poly.Y(2)).Add(poly.One()).Add(poly.YShift(0, 2)).Add(poly.X(1).Scale(big.NewInt(-4)))
	data := mixed.Serialize()
	require.NotEmpty(t, data)

	back, err := poly.Deserialize(data)
	require.NoError(t, err)
	assert.True(t, mixed.Equal(back))
}

// TestString_FormatsDeterministically checks the debug renderer produces
// a stable, human-legible form and never panics on the zero polynomial.
func TestString_FormatsDeterministically(t *testing.T) {
	p := poly.X(3).Add(poly.Y(1)).Add(poly.One())
	assert.NotEmpty(t, p.String())
	assert.Equal(t, "0", poly.Zero().String())
}
