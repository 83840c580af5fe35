package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/tictoc/prof"
)

func TestFibonacci(t *testing.T) {
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	for i, w := range want {
		assert.Equal(t, w, RecFibonacci(i+1), "rec(%d)", i+1)
		assert.Equal(t, w, LinearFibonacci(i+1), "linear(%d)", i+1)
	}

	assert.Equal(t, int64(63245986), LinearFibonacci(39))
}

func TestRun(t *testing.T) {
	var now int64

	p := prof.New(prof.WithClock(func() int64 { now++; return now }))
	p.Enable()

	res, err := Run(context.Background(), p, 20)
	require.NoError(t, err)

	// The sum of the first n Fibonacci numbers is F(n+2) - 1.
	assert.Equal(t, LinearFibonacci(21)-1, res.RecSum)
	assert.Equal(t, res.RecSum, res.LinearSum)

	stats := p.Aggregate()
	require.Len(t, stats, 2)
	assert.Equal(t, RecRegion, stats[0].Name)
	assert.Equal(t, LinearRegion, stats[1].Name)

	for _, s := range stats {
		assert.Equal(t, 19, s.Calls)
		assert.Zero(t, s.Open)
	}
}

func TestRun_Disabled(t *testing.T) {
	p := prof.New()

	res, err := Run(context.Background(), p, 10)
	require.NoError(t, err)
	assert.Equal(t, LinearFibonacci(11)-1, res.LinearSum)
	assert.Empty(t, p.Series())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := prof.New()
	p.Enable()

	res, err := Run(ctx, p, DefaultLimit)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res)
	assert.Empty(t, p.Series())
}
