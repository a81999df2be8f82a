package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"venmito/config"
	"venmito/internal/domain/entity"
	mockSvc "venmito/internal/mocks/service"
	"venmito/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

// engineFixture wires the four services to one in-memory store.
type engineFixture struct {
	store        *memStore
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockIngestionMetrics
	runner       *BatchRunner
	people       usecase.PeopleUsecase
	promotions   usecase.PromotionUsecase
	transfers    usecase.TransferUsecase
	transactions usecase.TransactionUsecase
}

func newEngineFixture(t *testing.T, maxBatchSize int) *engineFixture {
	t.Helper()

	store := newMemStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockIngestionMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Ingestion: &config.IngestionConfig{
			IdentifierWidth: 4,
			DateLayouts:     config.DefaultDateLayouts,
			MaxBatchSize:    maxBatchSize,
		},
	}

	runner := NewBatchRunner(BatchRunnerParams{
		TxManager: store,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	})
	runner.now = func() time.Time { return fixedNow }

	return &engineFixture{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		runner:    runner,
		people: NewPeopleService(PeopleServiceParams{
			Runner:     runner,
			PersonRepo: store.NewPersonRepository(),
			Logger:     logger,
		}),
		promotions: NewPromotionService(PromotionServiceParams{
			Runner:        runner,
			PromotionRepo: store.NewPromotionRepository(),
			Logger:        logger,
		}),
		transfers: NewTransferService(TransferServiceParams{
			Runner:       runner,
			TransferRepo: store.NewTransferRepository(),
		}),
		transactions: NewTransactionService(TransactionServiceParams{
			Runner:          runner,
			TransactionRepo: store.NewTransactionRepository(),
			ItemRepo:        store.NewItemRepository(),
			Logger:          logger,
		}),
	}
}

// allowMetrics accepts any metric observation not already expected by the test.
func (f *engineFixture) allowMetrics() {
	f.metrics.EXPECT().ObserveRows(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().ObserveBatch(mock.Anything, mock.Anything, mock.Anything).Maybe()
}

// allowEvents accepts any published event not already expected by the test.
func (f *engineFixture) allowEvents() {
	f.publisher.EXPECT().PublishIngestionEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f *engineFixture) allowEffects() {
	f.allowMetrics()
	f.allowEvents()
}

// seedPeople stores two people with identifiers 0001 and 0002 directly, bypassing the upload path.
func (f *engineFixture) seedPeople(t *testing.T) {
	t.Helper()

	repo := f.store.NewPersonRepository()
	for _, person := range []*entity.Person{
		{Identifier: "0001", FirstName: "Jane", LastName: "Doe", Telephone: "+1-555-0100", Email: "jane@example.com", City: "Miami", Country: "USA"},
		{Identifier: "0002", FirstName: "John", LastName: "Smith", Telephone: "+1-555-0200", Email: "john@example.com"},
	} {
		require.NoError(t, repo.CreatePerson(t.Context(), person))
	}
}
