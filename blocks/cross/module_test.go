package cross

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/value"
)

func run(t *testing.T, a, b []float64) []bool {
	t.Helper()
	out, err := compute(context.Background(), block.Inputs{
		"a": value.SeriesVal(a),
		"b": value.SeriesVal(b),
	}, block.Config{})
	require.NoError(t, err)
	got, err := out["out"].AsBoolSeries()
	require.NoError(t, err)
	return got
}

func TestCross_DetectsUpwardCrossing(t *testing.T) {
	// a crosses above b between index 1 and 2.
	got := run(t, []float64{1, 2, 4, 5}, []float64{3, 3, 3, 3})
	assert.Equal(t, []bool{false, false, true, false}, got)
}

func TestCross_TouchThenRiseCounts(t *testing.T) {
	got := run(t, []float64{3, 4}, []float64{3, 3})
	assert.Equal(t, []bool{false, true}, got)
}

func TestCross_NaNSuppressesSignal(t *testing.T) {
	got := run(t, []float64{1, math.NaN(), 4}, []float64{3, 3, 3})
	assert.Equal(t, []bool{false, false, false}, got)
}

func TestCross_OutputLengthIsShorterInput(t *testing.T) {
	got := run(t, []float64{1, 4, 5}, []float64{3, 3})
	assert.Len(t, got, 2)
}

func TestCross_RejectsNonSeriesInput(t *testing.T) {
	_, err := compute(context.Background(), block.Inputs{
		"a": value.BoolSeriesVal([]bool{true}),
		"b": value.SeriesVal([]float64{1}),
	}, block.Config{})
	assert.Error(t, err)
}
