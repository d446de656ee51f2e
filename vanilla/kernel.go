package vanilla

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantbatch/vanilla/market"
)

var stdNormal = distuv.UnitNormal

// terms carries the per-element intermediate quantities shared by the
// price formula and every Greek, computed once per batch so each
// transcendental is evaluated a single time.
type terms struct {
	sqrtT   []float64 // sqrt(expiry)
	sqrtVar []float64 // volatility * sqrt(expiry)
	d1      []float64
	d2      []float64
}

// computeTerms evaluates sqrtVar, d1 and d2 for the whole batch. When
// sqrtVar is zero the division yields NaN or an infinity, which is
// propagated to the caller unchanged.
func computeTerms(p *market.Params) *terms {
	n := p.Len()
	t := &terms{
		sqrtT:   make([]float64, n),
		sqrtVar: make([]float64, n),
		d1:      make([]float64, n),
		d2:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		sqrtT := math.Sqrt(p.Expiries[i])
		sv := p.Volatilities[i] * sqrtT
		d1 := (math.Log(p.Forwards[i]/p.Strikes[i]) + sv*sv/2) / sv
		t.sqrtT[i] = sqrtT
		t.sqrtVar[i] = sv
		t.d1[i] = d1
		t.d2[i] = d1 - sv
	}
	return t
}
