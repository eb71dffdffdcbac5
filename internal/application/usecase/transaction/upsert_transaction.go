package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxMerchantLength is the maximum allowed length for merchants.
	MaxMerchantLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// UpsertTransactionInput represents the input for creating or updating a transaction.
// Amounts are the raw strings sent by the client; thousands separators and a
// leading currency symbol are accepted.
type UpsertTransactionInput struct {
	UserID      uuid.UUID
	ID          *int64
	Date        string
	Type        entity.TransactionType
	Status      entity.TransactionStatus
	Amount      string
	Category    string
	Subtotal    *string
	Tax         *string
	Tip         *string
	Merchant    string
	Description string
	Notes       string
}

// UpsertTransactionOutput represents the stored transaction.
type UpsertTransactionOutput struct {
	Transaction *TransactionOutput
	Created     bool
}

// UpsertTransactionUseCase creates a transaction, or replaces one when an ID is given.
type UpsertTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	sanitizer       adapter.TextSanitizer
}

// NewUpsertTransactionUseCase creates a new UpsertTransactionUseCase instance.
func NewUpsertTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	sanitizer adapter.TextSanitizer,
) *UpsertTransactionUseCase {
	return &UpsertTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		sanitizer:       sanitizer,
	}
}

// Execute validates the input and stores the transaction.
func (uc *UpsertTransactionUseCase) Execute(ctx context.Context, input UpsertTransactionInput) (*UpsertTransactionOutput, error) {
	input.Merchant = uc.clean(input.Merchant)
	input.Description = uc.clean(input.Description)
	input.Notes = uc.clean(input.Notes)
	input.Category = strings.TrimSpace(input.Category)

	fields, err := uc.validateInput(input)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByNameAndType(ctx, input.Category, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			fmt.Sprintf("category %q does not exist for %s transactions", input.Category, input.Type),
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if input.ID == nil {
		transaction := entity.NewTransaction(
			input.UserID,
			fields.date,
			input.Type,
			input.Status,
			fields.amount,
			input.Category,
			input.Description,
		)
		applyDetails(transaction, input, fields)

		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}
		return &UpsertTransactionOutput{Transaction: toTransactionOutput(transaction), Created: true}, nil
	}

	transaction, err := uc.transactionRepo.FindByIDAndUser(ctx, *input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	transaction.Date = fields.date
	transaction.Type = input.Type
	transaction.Status = input.Status
	transaction.Amount = fields.amount
	transaction.Category = input.Category
	transaction.Description = input.Description
	applyDetails(transaction, input, fields)
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return &UpsertTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}

type parsedFields struct {
	date     time.Time
	amount   decimal.Decimal
	subtotal *decimal.Decimal
	tax      *decimal.Decimal
	tip      *decimal.Decimal
}

func applyDetails(t *entity.Transaction, input UpsertTransactionInput, fields *parsedFields) {
	t.Subtotal = fields.subtotal
	t.Tax = fields.tax
	t.Tip = fields.tip
	t.Merchant = input.Merchant
	t.Notes = input.Notes
}

func (uc *UpsertTransactionUseCase) clean(s string) string {
	if uc.sanitizer != nil {
		s = uc.sanitizer.Sanitize(s)
	}
	return strings.TrimSpace(s)
}

// validateInput checks every field and parses dates and amounts.
func (uc *UpsertTransactionUseCase) validateInput(input UpsertTransactionInput) (*parsedFields, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'Income' or 'Expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Status.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"status must be 'Pending', 'Complete' or 'Canceled'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(input.Date))
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be formatted as YYYY-MM-DD",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.Category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category is required",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if input.Description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if utf8.RuneCountInString(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if utf8.RuneCountInString(input.Merchant) > MaxMerchantLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMerchantTooLong,
			fmt.Sprintf("merchant must not exceed %d characters", MaxMerchantLength),
			domainerror.ErrMerchantTooLong,
		)
	}
	if utf8.RuneCountInString(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	fields := &parsedFields{date: date}
	if fields.amount, err = ParseAmount("amount", input.Amount); err != nil {
		return nil, err
	}
	if fields.subtotal, err = parseOptionalAmount("subtotal", input.Subtotal); err != nil {
		return nil, err
	}
	if fields.tax, err = parseOptionalAmount("tax", input.Tax); err != nil {
		return nil, err
	}
	if fields.tip, err = parseOptionalAmount("tip", input.Tip); err != nil {
		return nil, err
	}
	return fields, nil
}

// ParseAmount parses a non-negative currency amount rounded to cents.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("%s must be a number", field),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if amount.IsNegative() {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("%s must not be negative", field),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return amount.Round(2), nil
}

func parseOptionalAmount(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	amount, err := ParseAmount(field, *raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
