package dto

import (
	"github.com/spendtrack/backend/internal/application/usecase/dashboard"
)

func toDateRangeResponse(r *dashboard.DateRange) *DateRangeResponse {
	if r == nil {
		return nil
	}
	return &DateRangeResponse{
		StartDate: dashboard.FormatDate(r.Start),
		EndDate:   dashboard.FormatDate(r.End),
	}
}

// DataRangeResponse represents the span of the user's history.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	DaysCovered       int     `json:"days_covered"`
	TotalTransactions int64   `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

// ToDataRangeResponse converts a GetDataRangeOutput to DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	var oldestDate, newestDate *string
	if output.OldestDate != nil {
		s := dashboard.FormatDate(*output.OldestDate)
		oldestDate = &s
	}
	if output.NewestDate != nil {
		s := dashboard.FormatDate(*output.NewestDate)
		newestDate = &s
	}

	return DataRangeResponse{
		OldestDate:        oldestDate,
		NewestDate:        newestDate,
		DaysCovered:       output.DaysCovered,
		TotalTransactions: output.TotalTransactions,
		HasData:           output.HasData,
	}
}

// BalancePointResponse is one day of the balance chart.
type BalancePointResponse struct {
	Date       string             `json:"date"`
	Income     float64            `json:"income"`
	Expense    float64            `json:"expense"`
	Balance    float64            `json:"balance"`
	Categories map[string]float64 `json:"categories,omitempty"`
}

// BalanceSeriesResponse is the balance chart payload.
type BalanceSeriesResponse struct {
	Range           *DateRangeResponse     `json:"range"`
	StartingBalance float64                `json:"starting_balance"`
	Points          []BalancePointResponse `json:"points"`
	ChartConfig     dashboard.ChartConfig  `json:"chart_config"`
}

// ToBalanceSeriesResponse converts a GetBalanceSeriesOutput to its response DTO.
func ToBalanceSeriesResponse(output *dashboard.GetBalanceSeriesOutput) BalanceSeriesResponse {
	points := make([]BalancePointResponse, len(output.Points))
	for i, p := range output.Points {
		var categories map[string]float64
		if len(p.Categories) > 0 {
			categories = make(map[string]float64, len(p.Categories))
			for name, amount := range p.Categories {
				categories[name] = toFloat(amount)
			}
		}
		points[i] = BalancePointResponse{
			Date:       dashboard.FormatDate(p.Date),
			Income:     toFloat(p.Income),
			Expense:    toFloat(p.Expense),
			Balance:    toFloat(p.Balance),
			Categories: categories,
		}
	}

	return BalanceSeriesResponse{
		Range:           toDateRangeResponse(output.Range),
		StartingBalance: toFloat(output.StartingBalance),
		Points:          points,
		ChartConfig:     output.ChartConfig,
	}
}

// CategorySpendPointResponse is one day of a category's cumulative spend.
type CategorySpendPointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CategorySpendResponse is the category spend chart payload.
type CategorySpendResponse struct {
	Range         *DateRangeResponse           `json:"range"`
	Category      string                       `json:"category"`
	TimeFrame     *string                      `json:"time_frame"`
	Limit         *float64                     `json:"limit"`
	StartingSpend float64                      `json:"starting_spend"`
	Points        []CategorySpendPointResponse `json:"points"`
}

// ToCategorySpendResponse converts a GetCategorySpendSeriesOutput to its response DTO.
func ToCategorySpendResponse(output *dashboard.GetCategorySpendSeriesOutput) CategorySpendResponse {
	points := make([]CategorySpendPointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = CategorySpendPointResponse{
			Date:   dashboard.FormatDate(p.Date),
			Amount: toFloat(p.Amount),
		}
	}

	var timeFrame *string
	if output.TimeFrame != nil {
		tf := string(*output.TimeFrame)
		timeFrame = &tf
	}

	return CategorySpendResponse{
		Range:         toDateRangeResponse(output.Range),
		Category:      output.Category,
		TimeFrame:     timeFrame,
		Limit:         toFloatPtr(output.Limit),
		StartingSpend: toFloat(output.StartingSpend),
		Points:        points,
	}
}

// BreakdownSliceResponse is one slice of the breakdown pie.
type BreakdownSliceResponse struct {
	Category         string  `json:"category"`
	Amount           float64 `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
	Color            string  `json:"color"`
}

// BreakdownResponse is the breakdown chart payload.
type BreakdownResponse struct {
	Range  *DateRangeResponse       `json:"range"`
	Type   string                   `json:"type"`
	Total  float64                  `json:"total"`
	Slices []BreakdownSliceResponse `json:"slices"`
}

// ToBreakdownResponse converts a GetSpendBreakdownOutput to its response DTO.
func ToBreakdownResponse(output *dashboard.GetSpendBreakdownOutput) BreakdownResponse {
	slices := make([]BreakdownSliceResponse, len(output.Slices))
	for i, s := range output.Slices {
		slices[i] = BreakdownSliceResponse{
			Category:         s.Category,
			Amount:           toFloat(s.Amount),
			Percentage:       s.Percentage,
			TransactionCount: s.TransactionCount,
			Color:            s.Color,
		}
	}

	return BreakdownResponse{
		Range:  toDateRangeResponse(output.Range),
		Type:   string(output.Type),
		Total:  toFloat(output.Total),
		Slices: slices,
	}
}

// MonthSummaryResponse holds one month's totals.
type MonthSummaryResponse struct {
	Range        DateRangeResponse `json:"range"`
	Income       float64           `json:"income"`
	Expense      float64           `json:"expense"`
	IncomeCount  int64             `json:"income_count"`
	ExpenseCount int64             `json:"expense_count"`
}

// ChangeResponse is the difference between the two months.
type ChangeResponse struct {
	Diff    float64  `json:"diff"`
	Percent *float64 `json:"percent"`
}

// MonthlySummaryResponse compares the current month with the previous one.
type MonthlySummaryResponse struct {
	Current            MonthSummaryResponse `json:"current"`
	Previous           MonthSummaryResponse `json:"previous"`
	IncomeChange       ChangeResponse       `json:"income_change"`
	ExpenseChange      ChangeResponse       `json:"expense_change"`
	IncomeCountChange  ChangeResponse       `json:"income_count_change"`
	ExpenseCountChange ChangeResponse       `json:"expense_count_change"`
}

func toMonthSummaryResponse(m dashboard.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Range:        *toDateRangeResponse(&m.Range),
		Income:       toFloat(m.Income),
		Expense:      toFloat(m.Expense),
		IncomeCount:  m.IncomeCount,
		ExpenseCount: m.ExpenseCount,
	}
}

func toChangeResponse(c dashboard.SummaryChange) ChangeResponse {
	return ChangeResponse{Diff: toFloat(c.Diff), Percent: c.Percent}
}

// ToMonthlySummaryResponse converts a GetMonthlySummaryOutput to its response DTO.
func ToMonthlySummaryResponse(output *dashboard.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Current:            toMonthSummaryResponse(output.Current),
		Previous:           toMonthSummaryResponse(output.Previous),
		IncomeChange:       toChangeResponse(output.IncomeChange),
		ExpenseChange:      toChangeResponse(output.ExpenseChange),
		IncomeCountChange:  toChangeResponse(output.IncomeCountChange),
		ExpenseCountChange: toChangeResponse(output.ExpenseCountChange),
	}
}
