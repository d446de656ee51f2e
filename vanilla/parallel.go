package vanilla

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/quantbatch/vanilla/market"
)

// Below this size a batch is evaluated serially; goroutine startup costs
// more than the arithmetic saved.
const minParallelBatch = 2048

// PricesParallel evaluates the same formula as Prices with the batch
// split into contiguous chunks across workers. Elements are independent,
// so the output is identical to the serial result. workers < 1 means one
// worker per CPU.
func PricesParallel(p *market.Params, typ OptionType, workers int) ([]float64, error) {
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	return parallelInto(p, workers, func(sub *market.Params, dst []float64) {
		pricesInto(sub, computeTerms(sub), typ, dst)
	}), nil
}

// GreeksParallel is the chunked counterpart of Greeks.
func GreeksParallel(p *market.Params, g Greek, typ OptionType, workers int) ([]float64, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%w: greek is %s", ErrInvalidInput, g)
	}
	if !typ.valid() {
		return nil, fmt.Errorf("%w: option type is %s", ErrInvalidInput, typ)
	}
	return parallelInto(p, workers, func(sub *market.Params, dst []float64) {
		greeksInto(sub, computeTerms(sub), g, typ, dst)
	}), nil
}

// parallelInto runs eval over disjoint chunks of p, writing into disjoint
// chunks of one output batch. Chunks never alias each other, so no
// locking is needed.
func parallelInto(p *market.Params, workers int, eval func(sub *market.Params, dst []float64)) []float64 {
	n := p.Len()
	out := make([]float64, n)
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || n < minParallelBatch {
		eval(p, out)
		return out
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			eval(p.Slice(start, end), out[start:end])
			return nil
		})
	}
	// The chunk workers are pure arithmetic and never return an error.
	_ = g.Wait()
	return out
}
