// Package vanilla prices batches of European vanilla options and computes
// their sensitivities (delta, gamma, theta, vega, rho) in closed form from
// the canonical parameter set produced by the market package.
//
// Every entry point is a pure function: the batch goes in, one result
// batch comes out, nothing is retained between calls. Elements of a batch
// are independent of one another, which is what the parallel entry points
// exploit.
package vanilla

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for an unrecognized option type or Greek
// selector. Validation happens before any numeric work.
var ErrInvalidInput = errors.New("invalid input")

// OptionType distinguishes calls from puts. The zero value is deliberately
// neither, so an unset flag fails validation instead of silently pricing
// one side.
type OptionType uint8

const (
	Call OptionType = iota + 1
	Put
)

// ParseOptionType converts a boundary string into an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: option type must be \"call\" or \"put\", got %q", ErrInvalidInput, s)
}

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", uint8(t))
}

func (t OptionType) valid() bool { return t == Call || t == Put }

// Greek selects which sensitivity the Greeks kernel evaluates.
type Greek uint8

const (
	Delta Greek = iota + 1
	Gamma
	Theta
	Vega
	Rho
)

// ParseGreek converts a boundary string into a Greek selector.
func ParseGreek(s string) (Greek, error) {
	switch s {
	case "delta":
		return Delta, nil
	case "gamma":
		return Gamma, nil
	case "theta":
		return Theta, nil
	case "vega":
		return Vega, nil
	case "rho":
		return Rho, nil
	}
	return 0, fmt.Errorf("%w: greek must be one of \"delta\", \"gamma\", \"theta\", \"vega\" or \"rho\", got %q",
		ErrInvalidInput, s)
}

func (g Greek) String() string {
	switch g {
	case Delta:
		return "delta"
	case Gamma:
		return "gamma"
	case Theta:
		return "theta"
	case Vega:
		return "vega"
	case Rho:
		return "rho"
	}
	return fmt.Sprintf("Greek(%d)", uint8(g))
}

func (g Greek) valid() bool { return g >= Delta && g <= Rho }

// Result holds the discounted price and the full sensitivity set for a
// batch, one entry per option instance.
type Result struct {
	Prices []float64
	Deltas []float64
	Gammas []float64
	Thetas []float64
	Vegas  []float64
	Rhos   []float64
}
