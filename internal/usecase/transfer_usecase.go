package usecase

import (
	"context"

	"venmito/internal/domain/entity"
)

// TransferUsecase ingests transfers between known people.
type TransferUsecase interface {
	// UploadTransfers inserts every transfer whose parties resolve.
	// A batch in which nothing could be inserted fails as a whole.
	UploadTransfers(ctx context.Context, records []RawRecord) (*BatchResult[*entity.Transfer], error)

	// ListTransfers returns every transfer with sender and recipient summaries.
	ListTransfers(ctx context.Context) ([]*entity.Transfer, error)
}
