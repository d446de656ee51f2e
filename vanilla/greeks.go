package vanilla

import (
	"fmt"
	"math"

	"github.com/quantbatch/vanilla/market"
)

// Greeks evaluates one sensitivity for every option in the batch.
//
// Gamma and vega are identical for calls and puts; delta, theta and rho
// carry separate call and put formulas. Theta and rho discount the strike
// at the cost-of-carry, matching the flat-carry Black-Scholes form used
// throughout this package.
func Greeks(p *market.Params, g Greek, typ OptionType) ([]float64, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%w: greek is %s", ErrInvalidInput, g)
	}
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	out := make([]float64, p.Len())
	greeksInto(p, computeTerms(p), g, typ, out)
	return out, nil
}

func greeksInto(p *market.Params, tm *terms, g Greek, typ OptionType, dst []float64) {
	for i := range dst {
		dst[i] = greekAt(p, tm, i, g, typ)
	}
}

func greekAt(p *market.Params, tm *terms, i int, g Greek, typ OptionType) float64 {
	switch g {
	case Delta:
		if typ == Call {
			return stdNormal.CDF(tm.d1[i])
		}
		return stdNormal.CDF(tm.d1[i]) - 1
	case Gamma:
		return stdNormal.Prob(tm.d1[i]) / (p.Spots[i] * p.Volatilities[i] * tm.sqrtT[i])
	case Vega:
		return p.Spots[i] * tm.sqrtT[i] * stdNormal.Prob(tm.d1[i])
	case Theta:
		lead := p.Spots[i] * p.Volatilities[i] * stdNormal.Prob(tm.d1[i]) / tm.sqrtT[i]
		carried := p.Carries[i] * p.Strikes[i] * math.Exp(-p.Carries[i]*p.Expiries[i])
		if typ == Call {
			return lead - carried*stdNormal.CDF(tm.d2[i])
		}
		return -lead + carried*stdNormal.CDF(-tm.d2[i])
	case Rho:
		scaled := p.Strikes[i] * p.Expiries[i] * math.Exp(-p.Carries[i]*p.Expiries[i])
		if typ == Call {
			return scaled * stdNormal.CDF(tm.d2[i])
		}
		return -scaled * stdNormal.CDF(-tm.d2[i])
	}
	return math.NaN()
}

// Evaluate computes the price and all five Greeks in one pass, sharing
// the d1/d2 terms and every normal CDF and density lookup across the six
// outputs.
func Evaluate(p *market.Params, typ OptionType) (*Result, error) {
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	n := p.Len()
	tm := computeTerms(p)
	r := &Result{
		Prices: make([]float64, n),
		Deltas: make([]float64, n),
		Gammas: make([]float64, n),
		Thetas: make([]float64, n),
		Vegas:  make([]float64, n),
		Rhos:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		nd1 := stdNormal.CDF(tm.d1[i])
		nd2 := stdNormal.CDF(tm.d2[i])
		pdf1 := stdNormal.Prob(tm.d1[i])
		carryFactor := math.Exp(-p.Carries[i] * p.Expiries[i])

		undiscounted := p.Forwards[i]*nd1 - p.Strikes[i]*nd2
		lead := p.Spots[i] * p.Volatilities[i] * pdf1 / tm.sqrtT[i]
		if typ == Call {
			r.Prices[i] = p.Factors[i] * undiscounted
			r.Deltas[i] = nd1
			r.Thetas[i] = lead - p.Carries[i]*p.Strikes[i]*carryFactor*nd2
			r.Rhos[i] = p.Strikes[i] * p.Expiries[i] * carryFactor * nd2
		} else {
			nd2m := stdNormal.CDF(-tm.d2[i])
			r.Prices[i] = p.Factors[i] * (undiscounted - (p.Forwards[i] - p.Strikes[i]))
			r.Deltas[i] = nd1 - 1
			r.Thetas[i] = -lead + p.Carries[i]*p.Strikes[i]*carryFactor*nd2m
			r.Rhos[i] = -p.Strikes[i] * p.Expiries[i] * carryFactor * nd2m
		}
		r.Gammas[i] = pdf1 / (p.Spots[i] * p.Volatilities[i] * tm.sqrtT[i])
		r.Vegas[i] = p.Spots[i] * tm.sqrtT[i] * pdf1
	}
	return r, nil
}
