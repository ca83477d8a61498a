package obv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/value"
)

func run(t *testing.T, in block.Inputs) []float64 {
	t.Helper()
	out, err := compute(context.Background(), in, block.Config{})
	require.NoError(t, err)
	series, err := out["obv"].AsSeries()
	require.NoError(t, err)
	return series
}

func TestOBV(t *testing.T) {
	got := run(t, block.Inputs{
		"prices":  value.SeriesVal([]float64{10, 11, 9, 9, 12}),
		"volumes": value.SeriesVal([]float64{100, 100, 100, 100, 100}),
	})
	assert.Equal(t, []float64{0, 100, 0, 0, 100}, got)
}

func TestOBV_EmptyPricesYieldEmptyOutput(t *testing.T) {
	got := run(t, block.Inputs{
		"prices":  value.SeriesVal(nil),
		"volumes": value.SeriesVal([]float64{100}),
	})
	assert.Empty(t, got)
}

func TestOBV_MissingPricesYieldEmptyOutput(t *testing.T) {
	got := run(t, block.Inputs{
		"volumes": value.SeriesVal([]float64{100}),
	})
	assert.Empty(t, got)
}

func TestOBV_ShortVolumesContributeZero(t *testing.T) {
	got := run(t, block.Inputs{
		"prices":  value.SeriesVal([]float64{1, 2, 3}),
		"volumes": value.SeriesVal([]float64{50, 50}),
	})
	assert.Equal(t, []float64{0, 50, 50}, got)
}
