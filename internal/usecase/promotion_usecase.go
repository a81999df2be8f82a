package usecase

import (
	"context"

	"venmito/internal/domain/entity"
)

// PromotionUsecase reconciles promotion uploads.
type PromotionUsecase interface {
	// UploadPromotions upserts promotions keyed by (person, promotion, date).
	UploadPromotions(ctx context.Context, records []RawRecord) (*BatchResult[*entity.Promotion], error)

	// ListPromotions returns every promotion with its person.
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)
}
