package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "venmito/internal/mocks/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromotionService_UploadPromotions_DedupUpdatesResponse(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	first, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"client_email": "jane@example.com", "promotion": "ItemX", "responded": "No"},
	})
	require.NoError(t, err)
	require.Len(t, first.Succeeded, 1)
	assert.False(t, first.Succeeded[0].Responded)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), first.Succeeded[0].PromotionDate)

	second, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"client_email": "jane@example.com", "promotion": "ItemX", "responded": "Yes"},
	})
	require.NoError(t, err)
	require.Len(t, second.Succeeded, 1)

	assert.Equal(t, first.Succeeded[0].ID, second.Succeeded[0].ID)
	assert.True(t, second.Succeeded[0].Responded)
	assert.Len(t, f.store.state.promotions, 1)
}

func TestPromotionService_UploadPromotions_DistinctDatesAreDistinctRows(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	result, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"client_email": "jane@example.com", "promotion": "ItemX", "responded": true, "promotion_date": "2024-01-01"},
		{"client_email": "jane@example.com", "promotion": "ItemX", "responded": false, "promotion_date": "2024-01-02"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 2)
	assert.Len(t, f.store.state.promotions, 2)
}

func TestPromotionService_UploadPromotions_MatchesByTelephone(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	result, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"telephone": "+1-555-0200", "promotion": "ItemY", "responded": "yes"},
	})

	require.NoError(t, err)
	require.Len(t, result.Succeeded, 1)
	require.NotNil(t, result.Succeeded[0].PersonID)
	assert.Equal(t, f.store.state.people[1].ID, *result.Succeeded[0].PersonID)
	assert.True(t, result.Succeeded[0].Responded)
}

func TestPromotionService_UploadPromotions_EmailOrTelephonePicksLowestID(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	// John's email with Jane's phone: both people match, the earlier one wins.
	result, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"client_email": "john@example.com", "telephone": "+1-555-0100", "promotion": "ItemZ"},
	})

	require.NoError(t, err)
	require.Len(t, result.Succeeded, 1)
	assert.Equal(t, f.store.state.people[0].ID, *result.Succeeded[0].PersonID)
}

func TestPromotionService_UploadPromotions_UnknownPersonIsSkipped(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	result, err := f.promotions.UploadPromotions(t.Context(), []usecase.RawRecord{
		{"client_email": "ghost@example.com", "promotion": "ItemX"},
		{"client_email": "jane@example.com", "promotion": "ItemX"},
		{"promotion": "ItemX"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, usecase.SkipPersonNotFound, result.Skipped[0].Reason)
	assert.Equal(t, "ghost@example.com", result.Skipped[0].Key)
	assert.Equal(t, usecase.SkipInvalidRecord, result.Skipped[1].Reason)
	assert.Equal(t, 2, result.Skipped[1].Index)
}

func TestPromotionService_ListPromotions(t *testing.T) {
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	service := NewPromotionService(PromotionServiceParams{PromotionRepo: promotionRepo})

	promotionRepo.EXPECT().ListPromotions(mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := service.ListPromotions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list promotions")
}
