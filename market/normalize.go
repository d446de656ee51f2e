package market

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Params is the canonical market-parameter set produced by Normalize.
// Every field has one entry per option instance and the whole set is
// mutually consistent: Forwards[i] = Spots[i]*exp(Carries[i]*Expiries[i]),
// Factors[i] = exp(-Rates[i]*Expiries[i]) and
// Carries[i] = Rates[i] - Dividends[i].
type Params struct {
	Strikes      []float64
	Volatilities []float64
	Expiries     []float64
	Spots        []float64
	Forwards     []float64
	Rates        []float64
	Factors      []float64
	Dividends    []float64
	Carries      []float64
}

// Len returns the number of option instances in the batch.
func (p *Params) Len() int { return len(p.Strikes) }

// Slice returns a view of elements [i, j). The view shares memory with p.
func (p *Params) Slice(i, j int) *Params {
	return &Params{
		Strikes:      p.Strikes[i:j],
		Volatilities: p.Volatilities[i:j],
		Expiries:     p.Expiries[i:j],
		Spots:        p.Spots[i:j],
		Forwards:     p.Forwards[i:j],
		Rates:        p.Rates[i:j],
		Factors:      p.Factors[i:j],
		Dividends:    p.Dividends[i:j],
		Carries:      p.Carries[i:j],
	}
}

// Normalize resolves a batch of raw inputs into the canonical parameter
// set. Resolution order: discount rates, dividends, cost-of-carry,
// discount factors, spot/forward.
//
// An underlying batch is required; discounting defaults to a zero rate and
// carry to a zero dividend yield when unset. All supplied batches must
// share the same length.
//
// Normalize does not guard against volatility or expiry being zero: those
// values make the total standard deviation vanish and the downstream
// d1/d2 computation divides by it, so the affected elements come back as
// IEEE-754 NaN or infinities rather than an error.
func Normalize(in Inputs) (*Params, error) {
	n := len(in.Strikes)
	if len(in.Volatilities) != n || len(in.Expiries) != n {
		return nil, fmt.Errorf("%w: strikes, volatilities and expiries must have equal length (%d, %d, %d)",
			ErrInvalidInput, n, len(in.Volatilities), len(in.Expiries))
	}
	if in.Underlying.kind == underlyingNone {
		return nil, fmt.Errorf("%w: either spots or forwards must be supplied", ErrInvalidInput)
	}
	for _, b := range []struct {
		name  string
		batch []float64
		set   bool
	}{
		{"underlying", in.Underlying.batch, true},
		{"discounting", in.Discounting.batch, in.Discounting.kind != discountingNone},
		{"carry", in.Carry.batch, in.Carry.kind != carryNone},
	} {
		if b.set && len(b.batch) != n {
			return nil, fmt.Errorf("%w: %s batch has length %d, want %d", ErrInvalidInput, b.name, len(b.batch), n)
		}
	}

	p := &Params{
		Strikes:      cloneBatch(in.Strikes),
		Volatilities: cloneBatch(in.Volatilities),
		Expiries:     cloneBatch(in.Expiries),
	}

	switch in.Discounting.kind {
	case discountingRate:
		p.Rates = cloneBatch(in.Discounting.batch)
	case discountingFactor:
		p.Rates = make([]float64, n)
		for i, f := range in.Discounting.batch {
			p.Rates[i] = -math.Log(f) / p.Expiries[i]
		}
	default:
		p.Rates = make([]float64, n)
	}

	switch in.Carry.kind {
	case carryCost:
		p.Carries = cloneBatch(in.Carry.batch)
		// Back out the dividend yield so rate - dividend = carry holds.
		p.Dividends = floats.SubTo(make([]float64, n), p.Rates, p.Carries)
	case carryDividend:
		p.Dividends = cloneBatch(in.Carry.batch)
		p.Carries = floats.SubTo(make([]float64, n), p.Rates, p.Dividends)
	default:
		p.Dividends = make([]float64, n)
		p.Carries = floats.SubTo(make([]float64, n), p.Rates, p.Dividends)
	}

	if in.Discounting.kind == discountingFactor {
		p.Factors = cloneBatch(in.Discounting.batch)
	} else {
		p.Factors = make([]float64, n)
		for i := range p.Factors {
			p.Factors[i] = math.Exp(-p.Rates[i] * p.Expiries[i])
		}
	}

	if in.Underlying.kind == underlyingForward {
		p.Forwards = cloneBatch(in.Underlying.batch)
		p.Spots = make([]float64, n)
		for i := range p.Spots {
			p.Spots[i] = p.Forwards[i] * math.Exp(-p.Carries[i]*p.Expiries[i])
		}
	} else {
		p.Spots = cloneBatch(in.Underlying.batch)
		p.Forwards = make([]float64, n)
		for i := range p.Forwards {
			p.Forwards[i] = p.Spots[i] * math.Exp(p.Carries[i]*p.Expiries[i])
		}
	}

	return p, nil
}

// cloneBatch copies an input batch so a Params never aliases caller
// memory.
func cloneBatch(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}
