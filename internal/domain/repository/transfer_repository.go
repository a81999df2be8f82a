package repository

import (
	"context"

	"venmito/internal/domain/entity"
)

// TransferRepository defines the interface for transfer-related database operations.
type TransferRepository interface {
	// CreateTransfer persists a new transfer.
	CreateTransfer(ctx context.Context, transfer *entity.Transfer) error

	// ListTransfers returns every transfer with sender and recipient summaries.
	ListTransfers(ctx context.Context) ([]*entity.Transfer, error)
}
