package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/application/usecase/dashboard"
	"github.com/spendtrack/backend/internal/domain/entity"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDataRangeUseCase         *dashboard.GetDataRangeUseCase
	getBalanceSeriesUseCase     *dashboard.GetBalanceSeriesUseCase
	getCategorySpendUseCase     *dashboard.GetCategorySpendSeriesUseCase
	getSpendBreakdownUseCase    *dashboard.GetSpendBreakdownUseCase
	getMonthlySummaryUseCase    *dashboard.GetMonthlySummaryUseCase
	exportBalanceChartUseCase   *dashboard.ExportBalanceChartUseCase
	exportBreakdownChartUseCase *dashboard.ExportBreakdownChartUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDataRangeUseCase *dashboard.GetDataRangeUseCase,
	getBalanceSeriesUseCase *dashboard.GetBalanceSeriesUseCase,
	getCategorySpendUseCase *dashboard.GetCategorySpendSeriesUseCase,
	getSpendBreakdownUseCase *dashboard.GetSpendBreakdownUseCase,
	getMonthlySummaryUseCase *dashboard.GetMonthlySummaryUseCase,
	exportBalanceChartUseCase *dashboard.ExportBalanceChartUseCase,
	exportBreakdownChartUseCase *dashboard.ExportBreakdownChartUseCase,
) *DashboardController {
	return &DashboardController{
		getDataRangeUseCase:         getDataRangeUseCase,
		getBalanceSeriesUseCase:     getBalanceSeriesUseCase,
		getCategorySpendUseCase:     getCategorySpendUseCase,
		getSpendBreakdownUseCase:    getSpendBreakdownUseCase,
		getMonthlySummaryUseCase:    getMonthlySummaryUseCase,
		exportBalanceChartUseCase:   exportBalanceChartUseCase,
		exportBreakdownChartUseCase: exportBreakdownChartUseCase,
	}
}

// parseRangeInput reads range, start_date and end_date. Dates without a
// range imply a custom window.
func parseRangeInput(ctx *gin.Context) (dashboard.RangeInput, error) {
	input := dashboard.RangeInput{Selector: dashboard.TimeRangeSelector(ctx.Query("range"))}

	startRaw, endRaw := ctx.Query("start_date"), ctx.Query("end_date")
	if input.Selector == "" && (startRaw != "" || endRaw != "") {
		input.Selector = dashboard.TimeRangeCustom
	}
	if input.Selector != dashboard.TimeRangeCustom {
		return input, nil
	}

	custom := &dashboard.DateRange{}
	if startRaw != "" {
		start, err := dashboard.ParseDate(startRaw)
		if err != nil {
			return input, err
		}
		custom.Start = start
	}
	if endRaw != "" {
		end, err := dashboard.ParseDate(endRaw)
		if err != nil {
			return input, err
		}
		custom.End = end
	}
	input.Custom = custom
	return input, nil
}

// parseCategories accepts repeated and comma separated categories params.
func parseCategories(ctx *gin.Context) []string {
	var categories []string
	for _, raw := range ctx.QueryArray("categories") {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				categories = append(categories, name)
			}
		}
	}
	return categories
}

func (c *DashboardController) balanceInput(ctx *gin.Context) (dashboard.GetBalanceSeriesInput, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return dashboard.GetBalanceSeriesInput{}, false
	}
	rng, err := parseRangeInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return dashboard.GetBalanceSeriesInput{}, false
	}
	return dashboard.GetBalanceSeriesInput{
		UserID:     userID,
		Range:      rng,
		Categories: parseCategories(ctx),
	}, true
}

func (c *DashboardController) breakdownInput(ctx *gin.Context) (dashboard.GetSpendBreakdownInput, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return dashboard.GetSpendBreakdownInput{}, false
	}
	rng, err := parseRangeInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return dashboard.GetSpendBreakdownInput{}, false
	}
	return dashboard.GetSpendBreakdownInput{
		UserID: userID,
		Type:   entity.TransactionType(ctx.Query("type")),
		Range:  rng,
	}, true
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDataRangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToDataRangeResponse(output)))
}

// GetBalanceSeries handles GET /dashboard/balance-series requests.
func (c *DashboardController) GetBalanceSeries(ctx *gin.Context) {
	input, ok := c.balanceInput(ctx)
	if !ok {
		return
	}

	output, err := c.getBalanceSeriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToBalanceSeriesResponse(output)))
}

// GetBalanceChart handles GET /dashboard/balance-series/chart.png requests.
func (c *DashboardController) GetBalanceChart(ctx *gin.Context) {
	input, ok := c.balanceInput(ctx)
	if !ok {
		return
	}

	png, err := c.exportBalanceChartUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// GetCategorySpend handles GET /dashboard/category-spend requests.
func (c *DashboardController) GetCategorySpend(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	rng, err := parseRangeInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.getCategorySpendUseCase.Execute(ctx.Request.Context(), dashboard.GetCategorySpendSeriesInput{
		UserID:   userID,
		Category: ctx.Query("category"),
		Range:    rng,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToCategorySpendResponse(output)))
}

// GetBreakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) GetBreakdown(ctx *gin.Context) {
	input, ok := c.breakdownInput(ctx)
	if !ok {
		return
	}

	output, err := c.getSpendBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToBreakdownResponse(output)))
}

// GetBreakdownChart handles GET /dashboard/breakdown/chart.png requests.
func (c *DashboardController) GetBreakdownChart(ctx *gin.Context) {
	input, ok := c.breakdownInput(ctx)
	if !ok {
		return
	}

	png, err := c.exportBreakdownChartUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// GetMonthlySummary handles GET /dashboard/monthly-summary requests.
func (c *DashboardController) GetMonthlySummary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getMonthlySummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySummaryInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMonthlySummaryResponse(output)))
}
