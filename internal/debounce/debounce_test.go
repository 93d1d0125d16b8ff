package debounce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/wandb/leetplot/internal/debounce"
	"github.com/wandb/leetplot/internal/observability"
)

func TestDebounce_RunsOncePerMark(t *testing.T) {
	t.Parallel()

	d := debounce.New(rate.Inf, 1, observability.NewNoOpLogger())
	count := 0

	assert.False(t, d.Debounce(func() { count++ }), "nothing pending")

	d.Mark()
	d.Mark()
	assert.True(t, d.Pending())
	assert.True(t, d.Debounce(func() { count++ }))
	assert.False(t, d.Debounce(func() { count++ }))
	assert.Equal(t, 1, count)
}

func TestDebounce_RespectsRate(t *testing.T) {
	t.Parallel()

	d := debounce.New(rate.Every(time.Hour), 1, observability.NewNoOpLogger())
	count := 0

	d.Mark()
	assert.True(t, d.Debounce(func() { count++ }))

	d.Mark()
	assert.False(t, d.Debounce(func() { count++ }), "rate limited")
	assert.True(t, d.Pending())

	assert.True(t, d.Flush(func() { count++ }))
	assert.False(t, d.Pending())
	assert.Equal(t, 2, count)
}

func TestDebounce_Stop(t *testing.T) {
	t.Parallel()

	d := debounce.New(rate.Inf, 1, nil)
	d.Mark()
	d.Stop()

	assert.False(t, d.Pending())
	assert.False(t, d.Flush(func() { t.Fatal("ran after Stop") }))
}

func TestDebounce_NilIsNoOp(t *testing.T) {
	t.Parallel()

	var d *debounce.Debouncer
	d.Mark()
	d.Stop()
	assert.False(t, d.Debounce(func() {}))
}
