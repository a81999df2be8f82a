package postgres

import (
	"context"
	"time"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const promotionDateLayout = "2006-01-02"

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// FindPromotion retrieves the promotion with the (person, promotion, date) key. Dates compare by day.
func (repo *promotionRepository) FindPromotion(ctx context.Context, personID uint, promotion string, promotionDate time.Time) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("people_id = ? AND promotion = ? AND promotion_date = ?", personID, promotion, promotionDate.Format(promotionDateLayout)).
		Order("id ASC").
		First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, storageError(err, "failed to find promotion")
	}

	return toPromotionDomain(&promotionM), nil
}

// CreatePromotion persists a new promotion.
func (repo *promotionRepository) CreatePromotion(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Omit("Person").Create(promotionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrPersonNotFound, "invalid person reference")
		}

		return storageError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt
	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// UpdatePromotionResponse sets responded and bumps updated_at.
func (repo *promotionRepository) UpdatePromotionResponse(ctx context.Context, id uint, responded bool) (*entity.Promotion, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{ID: id}).
		Updates(map[string]any{
			"responded":  responded,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, storageError(result.Error, "failed to update promotion response")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPromotionNotFound
	}

	var promotionM model.PromotionModel
	if err := repo.db.WithContext(ctx).First(&promotionM, id).Error; err != nil {
		return nil, storageError(err, "failed to reload promotion")
	}

	return toPromotionDomain(&promotionM), nil
}

// ListPromotions returns every promotion with its person.
func (repo *promotionRepository) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Person").
		Order("id ASC").
		Find(&promotionModels).Error; err != nil {
		return nil, storageError(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// --- Mapper Functions ---

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:            data.ID,
		PersonID:      data.PeopleID,
		Promotion:     data.Promotion,
		Responded:     data.Responded,
		PromotionDate: data.PromotionDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Person:        toPersonSummary(data.Person),
	}
}

func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:            data.ID,
		PeopleID:      data.PersonID,
		Promotion:     data.Promotion,
		Responded:     data.Responded,
		PromotionDate: data.PromotionDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
