package market

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func baseInputs() Inputs {
	return Inputs{
		Strikes:      []float64{90, 100, 110},
		Volatilities: []float64{0.15, 0.2, 0.25},
		Expiries:     []float64{0.25, 1, 2},
		Underlying:   Spots([]float64{100, 100, 100}),
	}
}

func TestNormalizeRequiresUnderlying(t *testing.T) {
	in := baseInputs()
	in.Underlying = Underlying{}

	if _, err := Normalize(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeLengthMismatch(t *testing.T) {
	in := baseInputs()
	in.Volatilities = []float64{0.2}
	if _, err := Normalize(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for required batch mismatch, got %v", err)
	}

	in = baseInputs()
	in.Underlying = Forwards([]float64{100})
	if _, err := Normalize(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for underlying mismatch, got %v", err)
	}

	in = baseInputs()
	in.Discounting = Rates([]float64{0.05, 0.05})
	if _, err := Normalize(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for discounting mismatch, got %v", err)
	}

	in = baseInputs()
	in.Carry = Dividends([]float64{0.01})
	if _, err := Normalize(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for carry mismatch, got %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p, err := Normalize(baseInputs())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	zeros := []float64{0, 0, 0}
	ones := []float64{1, 1, 1}
	if !floats.Equal(p.Rates, zeros) {
		t.Errorf("rates should default to zero, got %v", p.Rates)
	}
	if !floats.Equal(p.Dividends, zeros) {
		t.Errorf("dividends should default to zero, got %v", p.Dividends)
	}
	if !floats.Equal(p.Carries, zeros) {
		t.Errorf("carries should be rate minus dividend, got %v", p.Carries)
	}
	if !floats.Equal(p.Factors, ones) {
		t.Errorf("zero rate should give unit discount factors, got %v", p.Factors)
	}
	// With zero carry the forward equals the spot.
	if !floats.EqualApprox(p.Forwards, p.Spots, 1e-15) {
		t.Errorf("forwards %v should equal spots %v", p.Forwards, p.Spots)
	}
}

func TestNormalizeDerivesForward(t *testing.T) {
	in := baseInputs()
	in.Discounting = Rates([]float64{0.05, 0.05, 0.05})
	in.Carry = Dividends([]float64{0.01, 0.02, 0.03})

	p, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i := range p.Forwards {
		want := p.Spots[i] * math.Exp((0.05-p.Dividends[i])*p.Expiries[i])
		if math.Abs(p.Forwards[i]-want) > 1e-12 {
			t.Errorf("forward[%d] = %v, want %v", i, p.Forwards[i], want)
		}
	}
}

func TestNormalizeSpotForwardRoundTrip(t *testing.T) {
	in := baseInputs()
	in.Discounting = Rates([]float64{0.03, 0.04, 0.05})
	in.Carry = CostOfCarries([]float64{0.02, 0.03, 0.01})

	fromSpots, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	in.Underlying = Forwards(fromSpots.Forwards)
	fromForwards, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if !floats.EqualApprox(fromForwards.Spots, fromSpots.Spots, 1e-12) {
		t.Errorf("round-tripped spots %v, want %v", fromForwards.Spots, fromSpots.Spots)
	}
}

func TestNormalizeRateFactorRoundTrip(t *testing.T) {
	in := baseInputs()
	in.Discounting = Factors([]float64{0.99, 0.95, 0.9})

	fromFactors, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i, f := range []float64{0.99, 0.95, 0.9} {
		want := -math.Log(f) / fromFactors.Expiries[i]
		if math.Abs(fromFactors.Rates[i]-want) > 1e-15 {
			t.Errorf("rate[%d] = %v, want %v", i, fromFactors.Rates[i], want)
		}
	}

	in.Discounting = Rates(fromFactors.Rates)
	fromRates, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !floats.EqualApprox(fromRates.Factors, fromFactors.Factors, 1e-12) {
		t.Errorf("round-tripped factors %v, want %v", fromRates.Factors, fromFactors.Factors)
	}
}

func TestNormalizeFactorsFromRates(t *testing.T) {
	in := baseInputs()
	in.Discounting = Rates([]float64{0.01, 0.02, 0.03})

	p, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i := range p.Factors {
		want := math.Exp(-p.Rates[i] * p.Expiries[i])
		if math.Abs(p.Factors[i]-want) > 1e-15 {
			t.Errorf("factor[%d] = %v, want %v", i, p.Factors[i], want)
		}
	}
}

func TestNormalizeCarryOverride(t *testing.T) {
	in := baseInputs()
	in.Discounting = Rates([]float64{0.05, 0.05, 0.05})
	in.Carry = CostOfCarries([]float64{0.07, 0, -0.01})

	p, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !floats.Equal(p.Carries, []float64{0.07, 0, -0.01}) {
		t.Errorf("carries = %v, want the supplied batch", p.Carries)
	}
	// The canonical set keeps rate - dividend = carry.
	for i := range p.Dividends {
		if math.Abs(p.Rates[i]-p.Dividends[i]-p.Carries[i]) > 1e-15 {
			t.Errorf("element %d: rate %v - dividend %v != carry %v", i, p.Rates[i], p.Dividends[i], p.Carries[i])
		}
	}
}

func TestNormalizeDoesNotAliasInputs(t *testing.T) {
	spots := []float64{100, 100, 100}
	in := baseInputs()
	in.Underlying = Spots(spots)

	p, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	spots[0] = 42
	if p.Spots[0] != 100 {
		t.Errorf("Params aliases caller memory: spot[0] = %v", p.Spots[0])
	}
}

func TestSlice(t *testing.T) {
	p, err := Normalize(baseInputs())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	sub := p.Slice(1, 3)
	if sub.Len() != 2 {
		t.Fatalf("sub.Len() = %d, want 2", sub.Len())
	}
	if sub.Strikes[0] != p.Strikes[1] || sub.Forwards[1] != p.Forwards[2] {
		t.Errorf("Slice does not view the expected elements")
	}
}
