package plot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wandb/leetplot/internal/plot"
	"github.com/wandb/leetplot/internal/plot/plotmock"
)

func TestCharWidthMeasurer(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]float64{6, 18, 0},
		plot.CharWidthMeasurer.MeasureLabels([]string{"1", "1.5", ""}, 12))
}

func TestCachedMeasurer_MeasuresOnlyMisses(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	delegate := plotmock.NewMockTextMeasurer(ctrl)
	gomock.InOrder(
		delegate.EXPECT().
			MeasureLabels([]string{"1", "2"}, 10.0).
			Return([]float64{5, 6}),
		delegate.EXPECT().
			MeasureLabels([]string{"3"}, 10.0).
			Return([]float64{7}),
		delegate.EXPECT().
			MeasureLabels([]string{"1"}, 20.0).
			Return([]float64{10}),
	)

	m, err := plot.NewCachedMeasurer(delegate, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 6}, m.MeasureLabels([]string{"1", "2"}, 10))
	assert.Equal(t, []float64{6, 7, 5}, m.MeasureLabels([]string{"2", "3", "1"}, 10))
	assert.Equal(t, []float64{10}, m.MeasureLabels([]string{"1"}, 20))
	assert.Equal(t, []float64{5}, m.MeasureLabels([]string{"1"}, 10))
}
