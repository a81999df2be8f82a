package repository

import (
	"context"
	"time"

	"venmito/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPromotionNotFound is returned when no promotion matches the dedup key.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines the interface for promotion-related database operations.
type PromotionRepository interface {
	// FindPromotion retrieves the promotion with the (person, promotion, date) dedup key.
	FindPromotion(ctx context.Context, personID uint, promotion string, promotionDate time.Time) (*entity.Promotion, error)

	// CreatePromotion persists a new promotion.
	CreatePromotion(ctx context.Context, promotion *entity.Promotion) error

	// UpdatePromotionResponse sets the responded flag of the promotion and returns the updated row.
	UpdatePromotionResponse(ctx context.Context, id uint, responded bool) (*entity.Promotion, error)

	// ListPromotions returns every promotion with its person.
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)
}
