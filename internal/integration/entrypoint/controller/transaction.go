package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/application/usecase/transaction"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	upsertUseCase *transaction.UpsertTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	upsertUseCase *transaction.UpsertTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{UserID: userID}
	for param, target := range map[string]**time.Time{
		"start_date": &input.StartDate,
		"end_date":   &input.EndDate,
	} {
		raw := ctx.Query(param)
		if raw == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionDate), param+" must be formatted as YYYY-MM-DD")
			return
		}
		*target = &date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToTransactionListResponse(output)))
}

// Upsert handles PUT /transactions requests. Without an id a transaction is
// created and 201 is returned.
func (c *TransactionController) Upsert(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpsertTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidTransactionAmount), "Invalid request body")
		return
	}

	status := entity.TransactionStatus(req.Status)
	if status == "" {
		status = entity.TransactionStatusComplete
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), transaction.UpsertTransactionInput{
		UserID:      userID,
		ID:          req.ID,
		Date:        req.Date,
		Type:        entity.TransactionType(req.Type),
		Status:      status,
		Amount:      string(req.Amount),
		Category:    req.Category,
		Subtotal:    req.Subtotal.Ptr(),
		Tax:         req.Tax.Ptr(),
		Tip:         req.Tip.Ptr(),
		Merchant:    req.Merchant,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	statusCode := http.StatusOK
	if output.Created {
		statusCode = http.StatusCreated
	}
	ctx.JSON(statusCode, dto.NewSuccessResponse(dto.ToTransactionResponse(output.Transaction)))
}

// Delete handles DELETE /transactions requests. The body is a JSON array of ids.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var ids []int64
	if err := ctx.ShouldBindJSON(&ids); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeEmptyTransactionIDs), "Body must be an array of transaction ids")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionsInput{
		TransactionIDs: ids,
		UserID:         userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteTransactionsResponse{
		DeletedCount: output.DeletedCount,
	}))
}
