package dashboard

import (
	"context"
	"fmt"

	"github.com/go-analyze/charts"

	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// RenderBalanceChart draws the balance and daily expense lines as a PNG.
func RenderBalanceChart(points []BalancePoint, title string) ([]byte, error) {
	if len(points) == 0 {
		return nil, nothingToChart()
	}

	labels := make([]string, 0, len(points))
	balance := make([]float64, 0, len(points))
	expense := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, FormatDate(p.Date))
		balance = append(balance, p.Balance.InexactFloat64())
		expense = append(expense, p.Expense.InexactFloat64())
	}

	p, err := charts.LineRender(
		[][]float64{balance, expense},
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.XAxisLabelsOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Balance", "Expense"}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// RenderBreakdownChart draws the non-zero slices of a breakdown as a PNG pie.
func RenderBreakdownChart(slices []BreakdownSlice, title string) ([]byte, error) {
	var (
		values []float64
		names  []string
	)
	for _, s := range slices {
		if !s.Amount.IsPositive() {
			continue
		}
		values = append(values, s.Amount.InexactFloat64())
		names = append(names, s.Category)
	}
	if len(values) == 0 {
		return nil, nothingToChart()
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

func nothingToChart() error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeNothingToChart,
		domainerror.ErrNothingToChart.Error(),
		nil,
	)
}

// ExportBalanceChartUseCase renders the running balance chart as a PNG.
type ExportBalanceChartUseCase struct {
	series *GetBalanceSeriesUseCase
}

// NewExportBalanceChartUseCase creates a new ExportBalanceChartUseCase instance.
func NewExportBalanceChartUseCase(series *GetBalanceSeriesUseCase) *ExportBalanceChartUseCase {
	return &ExportBalanceChartUseCase{series: series}
}

// Execute builds the series and renders it.
func (uc *ExportBalanceChartUseCase) Execute(ctx context.Context, input GetBalanceSeriesInput) ([]byte, error) {
	output, err := uc.series.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	if output.Range == nil {
		return nil, nothingToChart()
	}

	title := fmt.Sprintf("Balance %s to %s", FormatDate(output.Range.Start), FormatDate(output.Range.End))
	return RenderBalanceChart(output.Points, title)
}

// ExportBreakdownChartUseCase renders the parent category breakdown as a PNG.
type ExportBreakdownChartUseCase struct {
	breakdown *GetSpendBreakdownUseCase
}

// NewExportBreakdownChartUseCase creates a new ExportBreakdownChartUseCase instance.
func NewExportBreakdownChartUseCase(breakdown *GetSpendBreakdownUseCase) *ExportBreakdownChartUseCase {
	return &ExportBreakdownChartUseCase{breakdown: breakdown}
}

// Execute builds the breakdown and renders it.
func (uc *ExportBreakdownChartUseCase) Execute(ctx context.Context, input GetSpendBreakdownInput) ([]byte, error) {
	output, err := uc.breakdown.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	if output.Range == nil {
		return nil, nothingToChart()
	}

	label := "Spend"
	if output.Type == entity.TransactionTypeIncome {
		label = "Income"
	}
	title := fmt.Sprintf("%s by category %s to %s", label, FormatDate(output.Range.Start), FormatDate(output.Range.End))
	return RenderBreakdownChart(output.Slices, title)
}
