package dashboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

func TestBuildChartConfig(t *testing.T) {
	t.Run("assignment ignores order and duplicates", func(t *testing.T) {
		a := BuildChartConfig([]string{"Rent", "Food", "Travel"})
		b := BuildChartConfig([]string{"Travel", "Food", "Rent", "Food"})
		assert.Equal(t, a, b)
		require.Len(t, a, 3)
		assert.Equal(t, ChartSeriesConfig{Label: "Food", Color: chartPalette[0]}, a["Food"])
		assert.Equal(t, chartPalette[1], a["Rent"].Color)
	})

	t.Run("empty names are skipped", func(t *testing.T) {
		assert.Empty(t, BuildChartConfig([]string{""}))
	})

	t.Run("palette wraps around", func(t *testing.T) {
		names := make([]string, 0, len(chartPalette)+1)
		for i := 0; i <= len(chartPalette); i++ {
			names = append(names, string(rune('a'+i)))
		}
		config := BuildChartConfig(names)
		assert.Equal(t, chartPalette[0], config[names[len(chartPalette)]].Color)
	})
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderCharts(t *testing.T) {
	t.Run("balance chart renders a PNG", func(t *testing.T) {
		points := BuildBalanceSeries(nil, DateRange{Start: d("2024-01-01"), End: d("2024-01-07")}, decimal.NewFromInt(100), nil)
		buf, err := RenderBalanceChart(points, "Balance")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf, pngMagic))
	})

	t.Run("breakdown chart renders a PNG", func(t *testing.T) {
		buf, err := RenderBreakdownChart([]BreakdownSlice{
			{Category: "Food", Amount: decimal.NewFromInt(40)},
			{Category: "Rent", Amount: decimal.NewFromInt(60)},
		}, "Spend")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf, pngMagic))
	})

	t.Run("breakdown with only zero slices has nothing to chart", func(t *testing.T) {
		_, err := RenderBreakdownChart([]BreakdownSlice{{Category: "Food"}}, "Spend")
		var dashErr *domainerror.DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, domainerror.ErrCodeNothingToChart, dashErr.Code)
	})
}
