package perm

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Statistic maps one spike dataset to a scalar statistic value.
type Statistic func(times []float64) (float64, error)

// EvaluateOptions tunes surrogate statistic evaluation.
type EvaluateOptions struct {
	// Workers bounds the number of surrogates evaluated concurrently;
	// 0 or 1 evaluates serially. Parallelism is safe because each
	// surrogate is independent and the statistic only reads its input.
	Workers int
}

// DefaultEvaluateOptions returns serial evaluation.
func DefaultEvaluateOptions() EvaluateOptions { return EvaluateOptions{} }

// Evaluate applies fn to every surrogate dataset, producing the
// surrogate statistic distribution in input order.
func Evaluate(fn Statistic, surrogates [][]float64, opts EvaluateOptions) ([]float64, error) {
	if fn == nil {
		return nil, ErrNilStatistic
	}
	if len(surrogates) == 0 {
		return nil, ErrEmptySurrogates
	}

	values := make([]float64, len(surrogates))
	if opts.Workers <= 1 {
		for i, s := range surrogates {
			v, err := fn(s)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}

		return values, nil
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, s := range surrogates {
		g.Go(func() error {
			v, err := fn(s)
			if err != nil {
				return err
			}
			values[i] = v // each goroutine owns exactly one slot

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return values, nil
}

// Result bundles a full surrogate comparison: the observed statistic,
// the cached surrogate distribution, and the derived significance.
type Result struct {
	Observed   float64
	Surrogates []float64
	Tail       Tail
	PValue     float64
	ZScore     float64
}

// Test evaluates fn on the observed dataset and on every surrogate, then
// compares them: one shuffle pass, both significance measures.
func Test(observed []float64, fn Statistic, surrogates [][]float64, tail Tail, opts EvaluateOptions) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilStatistic
	}
	obs, err := fn(observed)
	if err != nil {
		return Result{}, err
	}
	values, err := Evaluate(fn, surrogates, opts)
	if err != nil {
		return Result{}, err
	}
	p, z, err := Stats(obs, values, tail)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Observed:   obs,
		Surrogates: values,
		Tail:       tail,
		PValue:     p,
		ZScore:     z,
	}, nil
}

// Column is one named numeric column of a report table.
type Column struct {
	Name   string
	Values []float64
}

// Report renders the result as a plain ordered collection of named
// numeric columns, the tabular form downstream summaries consume.
func (r Result) Report() []Column {
	devs := make([]float64, len(r.Surrogates))
	var mean float64
	if len(r.Surrogates) > 0 {
		mean = stat.Mean(r.Surrogates, nil)
	}
	for i, s := range r.Surrogates {
		devs[i] = s - mean
	}

	return []Column{
		{Name: "surrogate", Values: append([]float64(nil), r.Surrogates...)},
		{Name: "deviation", Values: devs},
		{Name: "observed", Values: []float64{r.Observed}},
		{Name: "p_value", Values: []float64{r.PValue}},
		{Name: "z_score", Values: []float64{r.ZScore}},
	}
}
