package usecase

import (
	"context"

	"venmito/internal/domain/entity"
)

// TransactionUsecase ingests purchase transactions and maintains the item catalog.
type TransactionUsecase interface {
	// UploadTransactions inserts transactions not seen before (by external id) with their items.
	UploadTransactions(ctx context.Context, records []RawRecord) (*BatchResult[*entity.Transaction], error)

	// ListTransactions returns every transaction with its person and items.
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)

	// ListItems returns the item catalog.
	ListItems(ctx context.Context) ([]*entity.Item, error)
}
