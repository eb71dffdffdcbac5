package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
	"github.com/spendtrack/backend/internal/integration/entrypoint/middleware"
)

// notFoundCodes are validation codes that describe a missing resource.
var notFoundCodes = map[string]bool{
	string(domainerror.ErrCodeTransactionNotFound): true,
	string(domainerror.ErrCodeReceiptTransaction):  true,
	string(domainerror.ErrCodeNothingToChart):      true,
}

// codedError extracts the code and message of any domain error.
func codedError(err error) (string, string, bool) {
	var (
		txnErr   *domainerror.TransactionError
		dashErr  *domainerror.DashboardError
		catErr   *domainerror.CategoryError
		limitErr *domainerror.SpendLimitError
		rcpErr   *domainerror.ReceiptError
		authErr  *domainerror.AuthError
	)
	switch {
	case errors.As(err, &txnErr):
		return string(txnErr.Code), txnErr.Message, true
	case errors.As(err, &dashErr):
		return string(dashErr.Code), dashErr.Message, true
	case errors.As(err, &catErr):
		return string(catErr.Code), catErr.Message, true
	case errors.As(err, &limitErr):
		return string(limitErr.Code), limitErr.Message, true
	case errors.As(err, &rcpErr):
		return string(rcpErr.Code), rcpErr.Message, true
	case errors.As(err, &authErr):
		return string(authErr.Code), authErr.Message, true
	}
	return "", "", false
}

// statusForCode maps an error code of the form XXX-CCNNNN to an HTTP status
// using its category digits.
func statusForCode(code string) int {
	if notFoundCodes[code] {
		return http.StatusNotFound
	}
	_, digits, ok := strings.Cut(code, "-")
	if !ok || len(digits) < 2 {
		return http.StatusInternalServerError
	}
	switch digits[:2] {
	case "01":
		return http.StatusBadRequest
	case "03":
		return http.StatusUnauthorized
	case "04":
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response for err.
func handleError(ctx *gin.Context, err error) {
	if code, message, ok := codedError(err); ok {
		status := statusForCode(code)
		if status >= http.StatusInternalServerError {
			slog.Error("Request failed", "path", ctx.FullPath(), "code", code, "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: message,
			Code:  code,
		})
		return
	}

	slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// requireUser returns the authenticated user's ID or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func badRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
