// Package market reconciles partially-specified market inputs for a batch
// of European vanilla options into one canonical, mutually consistent set
// of pricing variables (spots, forwards, discount rates and factors,
// dividend yields, cost-of-carry).
//
// Several quantities can be supplied in alternative forms: spot or forward,
// discount rate or discount factor, dividend yield or cost-of-carry. Each
// alternative group is a small tagged type with one constructor per form,
// so supplying both forms of a group is unrepresentable.
package market

import "errors"

// ErrInvalidInput is returned when a call violates an input rule. All
// input validation happens before any numeric work, and a single bad
// batch fails the whole call.
var ErrInvalidInput = errors.New("invalid input")

type underlyingKind uint8

const (
	underlyingNone underlyingKind = iota
	underlyingSpot
	underlyingForward
)

// Underlying selects which price drives the spot/forward relationship.
// Exactly one of Spots or Forwards must be supplied per call; Normalize
// rejects the zero value.
type Underlying struct {
	kind  underlyingKind
	batch []float64
}

// Spots marks the underlying batch as current spot prices.
func Spots(xs []float64) Underlying {
	return Underlying{kind: underlyingSpot, batch: xs}
}

// Forwards marks the underlying batch as forward prices for delivery at
// expiry.
func Forwards(xs []float64) Underlying {
	return Underlying{kind: underlyingForward, batch: xs}
}

type discountingKind uint8

const (
	discountingNone discountingKind = iota
	discountingRate
	discountingFactor
)

// Discounting selects how discounting is specified. The zero value means
// a continuously-compounded rate of zero for every element.
type Discounting struct {
	kind  discountingKind
	batch []float64
}

// Rates supplies continuously-compounded risk-free rates.
func Rates(xs []float64) Discounting {
	return Discounting{kind: discountingRate, batch: xs}
}

// Factors supplies discount factors, from which rates are derived as
// -ln(factor)/expiry per element.
func Factors(xs []float64) Discounting {
	return Discounting{kind: discountingFactor, batch: xs}
}

type carryKind uint8

const (
	carryNone carryKind = iota
	carryDividend
	carryCost
)

// Carry selects how the carry of the underlying is specified. The zero
// value means a continuous dividend yield of zero for every element.
type Carry struct {
	kind  carryKind
	batch []float64
}

// Dividends supplies continuous dividend yields; cost-of-carry is then
// rate minus dividend per element.
func Dividends(xs []float64) Carry {
	return Carry{kind: carryDividend, batch: xs}
}

// CostOfCarries supplies the cost-of-carry directly, overriding the
// rate-minus-dividend derivation.
func CostOfCarries(xs []float64) Carry {
	return Carry{kind: carryCost, batch: xs}
}

// Inputs is one batch pricing request. Strikes, Volatilities and Expiries
// are required and must share the same length; element i across every
// batch describes one option instance. Expiries are in years,
// volatilities annualized.
type Inputs struct {
	Strikes      []float64
	Volatilities []float64
	Expiries     []float64

	Underlying  Underlying
	Discounting Discounting
	Carry       Carry
}
