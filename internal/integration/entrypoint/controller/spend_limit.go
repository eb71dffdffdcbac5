package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/application/usecase/spendlimit"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// SpendLimitController handles spend limit endpoints.
type SpendLimitController struct {
	listUseCase   *spendlimit.ListSpendLimitsUseCase
	upsertUseCase *spendlimit.UpsertSpendLimitUseCase
}

// NewSpendLimitController creates a new spend limit controller instance.
func NewSpendLimitController(
	listUseCase *spendlimit.ListSpendLimitsUseCase,
	upsertUseCase *spendlimit.UpsertSpendLimitUseCase,
) *SpendLimitController {
	return &SpendLimitController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// List handles GET /spend-limits requests.
func (c *SpendLimitController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), spendlimit.ListSpendLimitsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToSpendLimitListResponse(output)))
}

// Upsert handles PUT /spend-limits requests.
func (c *SpendLimitController) Upsert(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpsertSpendLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidSpendLimit), "Invalid request body")
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), spendlimit.UpsertSpendLimitInput{
		UserID:    userID,
		Category:  req.Category,
		Limit:     string(req.Limit),
		TimeFrame: entity.TimeFrame(req.TimeFrame),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToSpendLimitResponse(output.Limit)))
}
