// Package receipt contains the receipt image use cases.
package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/domain/entity"
	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// DefaultMaxImageBytes is the upload cap used when none is configured.
const DefaultMaxImageBytes int64 = 500000

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ReceiptFile is one uploaded image.
type ReceiptFile struct {
	Filename string
	Data     []byte
}

// UploadReceiptsInput represents the input for attaching images to a transaction.
type UploadReceiptsInput struct {
	UserID        uuid.UUID
	TransactionID int64
	Files         []ReceiptFile
}

// ReceiptOutput represents a stored receipt image.
type ReceiptOutput struct {
	ID            int64
	TransactionID int64
	Path          string
	ContentType   string
	Size          int64
	URL           string
	CreatedAt     time.Time
}

// UploadReceiptsOutput represents the output of an upload.
type UploadReceiptsOutput struct {
	Receipts []*ReceiptOutput
}

// UploadReceiptsUseCase stores receipt images for a transaction.
type UploadReceiptsUseCase struct {
	transactionRepo adapter.TransactionRepository
	receiptRepo     adapter.ReceiptRepository
	storage         adapter.ObjectStorage
	maxBytes        int64
}

// NewUploadReceiptsUseCase creates a new UploadReceiptsUseCase instance.
func NewUploadReceiptsUseCase(
	transactionRepo adapter.TransactionRepository,
	receiptRepo adapter.ReceiptRepository,
	storage adapter.ObjectStorage,
	maxBytes int64,
) *UploadReceiptsUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &UploadReceiptsUseCase{
		transactionRepo: transactionRepo,
		receiptRepo:     receiptRepo,
		storage:         storage,
		maxBytes:        maxBytes,
	}
}

type checkedFile struct {
	data        []byte
	contentType string
	extension   string
}

// Execute validates every file before storing any of them. An upload is
// all or nothing: on failure no object or row is left behind.
func (uc *UploadReceiptsUseCase) Execute(ctx context.Context, input UploadReceiptsInput) (*UploadReceiptsOutput, error) {
	if len(input.Files) == 0 {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeNoReceiptFiles,
			"at least one image is required",
			domainerror.ErrNoReceiptFiles,
		)
	}

	if _, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptTransaction,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	checked := make([]checkedFile, 0, len(input.Files))
	for _, f := range input.Files {
		c, err := uc.check(f)
		if err != nil {
			return nil, err
		}
		checked = append(checked, c)
	}

	receipts := make([]*entity.ReceiptImage, 0, len(checked))
	stored := make([]string, 0, len(checked))
	for _, c := range checked {
		path := fmt.Sprintf("%s/%d/%s%s", input.UserID, input.TransactionID, uuid.NewString(), c.extension)
		size := int64(len(c.data))

		if err := uc.storage.Put(ctx, path, bytes.NewReader(c.data), size, c.contentType); err != nil {
			uc.discard(ctx, stored)
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptStorage,
				"failed to store image",
				errors.Join(domainerror.ErrReceiptStorage, err),
			)
		}
		stored = append(stored, path)
		receipts = append(receipts, entity.NewReceiptImage(input.UserID, input.TransactionID, path, c.contentType, size))
	}

	if err := uc.receiptRepo.CreateBatch(ctx, receipts); err != nil {
		uc.discard(ctx, stored)
		return nil, fmt.Errorf("failed to record receipts: %w", err)
	}

	output := &UploadReceiptsOutput{Receipts: make([]*ReceiptOutput, 0, len(receipts))}
	for _, receipt := range receipts {
		output.Receipts = append(output.Receipts, toReceiptOutput(receipt, ""))
	}

	slog.Info("Receipts uploaded",
		"user_id", input.UserID,
		"transaction_id", input.TransactionID,
		"count", len(output.Receipts),
	)
	return output, nil
}

// discard removes the objects of a failed upload.
func (uc *UploadReceiptsUseCase) discard(ctx context.Context, paths []string) {
	if len(paths) == 0 {
		return
	}
	if err := uc.storage.Remove(ctx, paths); err != nil {
		slog.Warn("Failed to remove orphaned receipt objects", "paths", paths, "error", err)
	}
}

func (uc *UploadReceiptsUseCase) check(f ReceiptFile) (checkedFile, error) {
	if int64(len(f.Data)) > uc.maxBytes {
		return checkedFile{}, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptTooLarge,
			fmt.Sprintf("%s exceeds %d bytes", f.Filename, uc.maxBytes),
			domainerror.ErrReceiptTooLarge,
		)
	}

	detected := mimetype.Detect(f.Data)
	if !detected.Is(allowedTypes[0]) && !detected.Is(allowedTypes[1]) && !detected.Is(allowedTypes[2]) {
		return checkedFile{}, domainerror.NewReceiptError(
			domainerror.ErrCodeUnsupportedReceiptType,
			fmt.Sprintf("%s is %s; accepted types are jpeg, png and webp", f.Filename, detected.String()),
			domainerror.ErrUnsupportedReceiptType,
		)
	}

	return checkedFile{
		data:        f.Data,
		contentType: detected.String(),
		extension:   detected.Extension(),
	}, nil
}

func toReceiptOutput(r *entity.ReceiptImage, url string) *ReceiptOutput {
	return &ReceiptOutput{
		ID:            r.ID,
		TransactionID: r.TransactionID,
		Path:          r.Path,
		ContentType:   r.ContentType,
		Size:          r.Size,
		URL:           url,
		CreatedAt:     r.CreatedAt,
	}
}
