// Package demo compares a recursive and an iterative Fibonacci implementation
// by timing every call with a [prof.Profiler].
package demo

import (
	"context"

	"github.com/ardnew/tictoc/prof"
)

// Region names used by [Run].
const (
	RecRegion    = "rec_fibonacci"
	LinearRegion = "linear_fibonacci"
)

// DefaultLimit is the exclusive upper bound of the Fibonacci indices
// evaluated by [Run].
const DefaultLimit = 40

// Result holds the sums of every Fibonacci number computed by [Run], one per
// implementation. Both sums are equal when the implementations agree.
type Result struct {
	RecSum    int64 `json:"rec_sum"    yaml:"rec_sum"`
	LinearSum int64 `json:"linear_sum" yaml:"linear_sum"`
}

// RecFibonacci returns the i-th Fibonacci number by naive recursion.
// Indices below 3 yield 1.
func RecFibonacci(i int) int64 {
	if i <= 2 {
		return 1
	}

	return RecFibonacci(i-1) + RecFibonacci(i-2)
}

// LinearFibonacci returns the i-th Fibonacci number in linear time.
// Indices below 3 yield 1.
func LinearFibonacci(i int) int64 {
	a, b := int64(1), int64(1)
	for range i - 2 {
		a, b = b, a+b
	}

	return b
}

// Run evaluates both implementations for every index in [1, limit), each
// call bracketed by a pair of toggles on p, and returns the sums. The
// recursive pass completes before the iterative pass begins.
//
// Run stops between calls when ctx is done and returns the partial sums with
// ctx's error.
func Run(ctx context.Context, p *prof.Profiler, limit int) (Result, error) {
	var res Result

	passes := []struct {
		region string
		fib    func(int) int64
		sum    *int64
	}{
		{RecRegion, RecFibonacci, &res.RecSum},
		{LinearRegion, LinearFibonacci, &res.LinearSum},
	}

	for _, pass := range passes {
		for i := 1; i < limit; i++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			p.Toggle(pass.region)
			*pass.sum += pass.fib(i)
			p.Toggle(pass.region)
		}
	}

	return res, nil
}
