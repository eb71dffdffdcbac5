package controller

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/application/usecase/receipt"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// receiptFormField is the multipart field holding receipt images.
const receiptFormField = "images"

// ReceiptController handles receipt image endpoints.
type ReceiptController struct {
	listUseCase   *receipt.ListReceiptsUseCase
	uploadUseCase *receipt.UploadReceiptsUseCase
	deleteUseCase *receipt.DeleteReceiptsUseCase
	maxImageBytes int64
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(
	listUseCase *receipt.ListReceiptsUseCase,
	uploadUseCase *receipt.UploadReceiptsUseCase,
	deleteUseCase *receipt.DeleteReceiptsUseCase,
	maxImageBytes int64,
) *ReceiptController {
	if maxImageBytes <= 0 {
		maxImageBytes = receipt.DefaultMaxImageBytes
	}
	return &ReceiptController{
		listUseCase:   listUseCase,
		uploadUseCase: uploadUseCase,
		deleteUseCase: deleteUseCase,
		maxImageBytes: maxImageBytes,
	}
}

// List handles GET /receipts requests.
func (c *ReceiptController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := receipt.ListReceiptsInput{UserID: userID}
	if raw := ctx.Query("transaction_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeReceiptTransaction), "transaction_id must be an integer")
			return
		}
		input.TransactionID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToReceiptListResponse(output.Receipts)))
}

// Upload handles POST /transactions/:id/receipts requests.
func (c *ReceiptController) Upload(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeReceiptTransaction), "Invalid transaction id")
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeNoReceiptFiles), "Request must be multipart/form-data")
		return
	}

	files := make([]receipt.ReceiptFile, 0, len(form.File[receiptFormField]))
	for _, header := range form.File[receiptFormField] {
		data, err := c.readFile(header)
		if err != nil {
			handleError(ctx, fmt.Errorf("failed to read %s: %w", header.Filename, err))
			return
		}
		files = append(files, receipt.ReceiptFile{Filename: header.Filename, Data: data})
	}

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), receipt.UploadReceiptsInput{
		UserID:        userID,
		TransactionID: transactionID,
		Files:         files,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToReceiptListResponse(output.Receipts)))
}

// readFile reads at most one byte past the limit so the use case can reject
// oversized images without buffering them whole.
func (c *ReceiptController) readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, c.maxImageBytes+1))
}

// Delete handles DELETE /receipts requests. The body is a JSON array of
// transaction ids.
func (c *ReceiptController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var ids []int64
	if err := ctx.ShouldBindJSON(&ids); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeEmptyTransactionIDs), "Body must be an array of transaction ids")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), receipt.DeleteReceiptsInput{
		UserID:         userID,
		TransactionIDs: ids,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteReceiptsResponse{
		DeletedCount: output.DeletedCount,
	}))
}
