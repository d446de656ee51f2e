package vanilla

import (
	"fmt"
	"math"

	"github.com/quantbatch/vanilla/market"
)

// Prices evaluates the discounted Black-Scholes value of every option in
// the batch. The put value comes from put-call parity on the undiscounted
// call, so both sides share the same d1/d2 evaluation.
func Prices(p *market.Params, typ OptionType) ([]float64, error) {
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	out := make([]float64, p.Len())
	pricesInto(p, computeTerms(p), typ, out)
	return out, nil
}

func pricesInto(p *market.Params, tm *terms, typ OptionType, dst []float64) {
	for i := range dst {
		undiscounted := p.Forwards[i]*stdNormal.CDF(tm.d1[i]) - p.Strikes[i]*stdNormal.CDF(tm.d2[i])
		if typ == Put {
			undiscounted -= p.Forwards[i] - p.Strikes[i]
		}
		dst[i] = p.Factors[i] * undiscounted
	}
}

// Intrinsics returns the exercise value of every option against its spot
// price, max(spot-strike, 0) for calls and max(strike-spot, 0) for puts.
func Intrinsics(p *market.Params, typ OptionType) ([]float64, error) {
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	out := make([]float64, p.Len())
	for i := range out {
		if typ == Call {
			out[i] = math.Max(0, p.Spots[i]-p.Strikes[i])
		} else {
			out[i] = math.Max(0, p.Strikes[i]-p.Spots[i])
		}
	}
	return out, nil
}
