package impl

import (
	"context"
	"log/slog"
	"time"

	"venmito/internal/domain/constants"
	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type promotionService struct {
	runner        *BatchRunner
	promotionRepo repository.PromotionRepository
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	Runner        *BatchRunner
	PromotionRepo repository.PromotionRepository
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		runner:        params.Runner,
		promotionRepo: params.PromotionRepo,
		logger:        params.Logger,
	}
}

// UploadPromotions attaches each row to the person matching its email or telephone,
// updating the response of a promotion already recorded for the same day.
func (srv *promotionService) UploadPromotions(ctx context.Context, records []usecase.RawRecord) (*usecase.BatchResult[*entity.Promotion], error) {
	batchDate := srv.runner.batchDate()

	return runBatch(ctx, srv.runner, batchPolicy{family: constants.FamilyPromotions}, records,
		func(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord) (*entity.Promotion, error) {
			return srv.upsertPromotion(ctx, repos, record, batchDate)
		})
}

func (srv *promotionService) upsertPromotion(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord, batchDate time.Time) (*entity.Promotion, error) {
	rec, err := srv.runner.normalizer.promotion(record, batchDate)
	if err != nil {
		return nil, skipRow(usecase.SkipInvalidRecord, "", "%v", err)
	}
	key := identifierKey(rec.Email, rec.Telephone)

	person, err := repos.NewPersonRepository().FindByEmailOrTelephone(ctx, rec.Email, rec.Telephone)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, skipRow(usecase.SkipPersonNotFound, key, "no person with this email or telephone")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person")
	}

	promotionRepo := repos.NewPromotionRepository()
	existing, err := promotionRepo.FindPromotion(ctx, person.ID, rec.Promotion, rec.PromotionDate)
	switch {
	case err == nil:
		updated, err := promotionRepo.UpdatePromotionResponse(ctx, existing.ID, rec.Responded)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update promotion response")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrPromotionNotFound):
		return nil, errors.Wrap(err, "failed to find promotion")
	}

	personID := person.ID
	promotion := &entity.Promotion{
		PersonID:      &personID,
		Promotion:     rec.Promotion,
		Responded:     rec.Responded,
		PromotionDate: rec.PromotionDate,
	}
	if err := promotionRepo.CreatePromotion(ctx, promotion); err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	return promotion, nil
}

// ListPromotions returns every promotion with its person.
func (srv *promotionService) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := srv.promotionRepo.ListPromotions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}
