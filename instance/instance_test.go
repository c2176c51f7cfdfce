package instance_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swiper/instance"
)

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestNewWR(t *testing.T) {
	inst, err := instance.NewWR(ints(1, 2, 3), big.NewRat(1, 10), big.NewRat(1, 2))
	require.NoError(t, err)
	require.Equal(t, 3, inst.N)
	require.Equal(t, big.NewInt(6), inst.TotalWeight)
}

func TestNewWREmpty(t *testing.T) {
	_, err := instance.NewWR(nil, big.NewRat(1, 10), big.NewRat(1, 2))
	require.ErrorIs(t, err, instance.ErrEmptyWeights)
}

func TestNewWRAllZero(t *testing.T) {
	_, err := instance.NewWR(ints(0, 0), big.NewRat(1, 10), big.NewRat(1, 2))
	require.ErrorIs(t, err, instance.ErrAllZeroWeights)
}

func TestNewWRBadThresholds(t *testing.T) {
	_, err := instance.NewWR(ints(1, 2), big.NewRat(1, 2), big.NewRat(1, 10))
	require.ErrorIs(t, err, instance.ErrThresholdOrder)

	_, err = instance.NewWR(ints(1, 2), big.NewRat(1, 2), big.NewRat(1, 2))
	require.ErrorIs(t, err, instance.ErrThresholdOrder)
}

func TestWQToWR(t *testing.T) {
	wq, err := instance.NewWQ(ints(1, 1, 1, 1, 1), big.NewRat(4, 5), big.NewRat(3, 5))
	require.NoError(t, err)

	wr, err := wq.ToWR()
	require.NoError(t, err)
	require.Equal(t, big.NewRat(1, 5), wr.AlphaW)
	require.Equal(t, big.NewRat(2, 5), wr.AlphaN)
	require.Equal(t, wq.Weights, wr.Weights)
}

func TestNewWQBadThresholds(t *testing.T) {
	_, err := instance.NewWQ(ints(1, 2), big.NewRat(1, 5), big.NewRat(2, 5))
	require.ErrorIs(t, err, instance.ErrThresholdOrder)
}

func TestStringers(t *testing.T) {
	wr, err := instance.NewWR(ints(1, 2), big.NewRat(1, 10), big.NewRat(1, 2))
	require.NoError(t, err)
	require.Contains(t, wr.String(), "WeightRestriction")

	wq, err := instance.NewWQ(ints(1, 2), big.NewRat(4, 5), big.NewRat(3, 5))
	require.NoError(t, err)
	require.Contains(t, wq.String(), "WeightQualification")
}
