package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"venmito/config"
	deliverycontext "venmito/internal/delivery/context"
	domainerrors "venmito/internal/domain/errors"
	"venmito/internal/domain/lifecycle"
	"venmito/internal/domain/repository"
	"venmito/internal/domain/service"
	"venmito/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Batch statuses recorded in metrics.
const (
	batchCommitted = "committed"
	batchRejected  = "rejected"
	batchFailed    = "failed"
)

// BatchRunnerParams holds dependencies shared by the upload services, injected by Fx.
type BatchRunnerParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   service.IngestionMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// BatchRunner drives one upload: a single storage transaction, one savepoint per row,
// and the bookkeeping after commit.
type BatchRunner struct {
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	metrics      service.IngestionMetrics
	normalizer   *normalizer
	maxBatchSize int
	logger       *slog.Logger
	now          func() time.Time
}

// NewBatchRunner builds the runner shared by the four upload services.
func NewBatchRunner(params BatchRunnerParams) *BatchRunner {
	var ingestion *config.IngestionConfig
	if params.Config != nil {
		ingestion = params.Config.Ingestion
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runner := &BatchRunner{
		txManager:  params.TxManager,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		normalizer: newNormalizer(ingestion),
		logger:     logger,
		now:        time.Now,
	}
	if ingestion != nil {
		runner.maxBatchSize = ingestion.MaxBatchSize
	}

	return runner
}

// log returns a request-scoped logger if available, otherwise falls back to the runner's logger.
func (r *BatchRunner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// batchDate is the UTC calendar day of the upload.
func (r *BatchRunner) batchDate() time.Time {
	return truncateToDay(r.now())
}

// rowFunc reconciles one row using repositories bound to the row's savepoint.
type rowFunc[T any] func(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord) (T, error)

// batchPolicy names the family and its all-skipped policy.
type batchPolicy struct {
	family string
	// requireInsert turns a batch without a single written row into a batch failure.
	requireInsert bool
}

// runBatch processes records in input order inside one transaction.
// Storage failures abort and roll back everything; any other row failure only skips that row.
func runBatch[T any](ctx context.Context, r *BatchRunner, policy batchPolicy, records []usecase.RawRecord, process rowFunc[T]) (*usecase.BatchResult[T], error) {
	log := r.log(ctx).With(slog.String("family", policy.family))
	start := r.now()

	if r.maxBatchSize > 0 && len(records) > r.maxBatchSize {
		r.metrics.ObserveBatch(policy.family, batchRejected, r.now().Sub(start))

		return nil, domainerrors.ErrBatchTooLarge.WithDetails(
			fmt.Sprintf("%d records exceed the limit of %d", len(records), r.maxBatchSize))
	}

	log.Info("Starting upload batch", slog.Int("received", len(records)))

	acc := newAccumulator[T](len(records))
	err := r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for i, record := range records {
			result, err := runRow(ctx, repos, i, record, process)
			if err != nil {
				return err
			}
			if result.skip != nil {
				log.Warn("Skipping row",
					slog.Int("index", i),
					slog.String("reason", string(result.skip.reason)),
					slog.String("key", result.skip.key),
					slog.String("detail", result.skip.detail),
				)
			}
			acc.add(result)
		}

		if policy.requireInsert && len(acc.result.Succeeded) == 0 {
			return domainerrors.ErrTransferBatchEmpty.WithDetails(
				fmt.Sprintf("all %d rows were skipped: %s", len(records), acc.skipSummary()))
		}

		return nil
	})
	elapsed := r.now().Sub(start)

	if err != nil {
		return nil, r.failBatch(ctx, log, policy, err, elapsed)
	}

	result := acc.result
	r.metrics.ObserveRows(policy.family, len(result.Succeeded), len(result.Skipped))
	r.metrics.ObserveBatch(policy.family, batchCommitted, elapsed)

	log.Info("Upload batch committed",
		slog.Int("received", result.Received),
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Duration("elapsed", elapsed),
	)

	r.publish(ctx, log, policy.family, result.Received, len(result.Succeeded), len(result.Skipped))

	return result, nil
}

// runRow executes process inside a savepoint and classifies its error.
// A non-nil error return means the batch must abort.
func runRow[T any](ctx context.Context, repos repository.RepositoryFactory, index int, record usecase.RawRecord, process rowFunc[T]) (rowResult[T], error) {
	var value T
	err := repos.Savepoint(ctx, func(rowRepos repository.RepositoryFactory) error {
		v, err := process(ctx, rowRepos, record)
		if err != nil {
			return err
		}
		value = v

		return nil
	})

	if err == nil {
		return rowResult[T]{index: index, value: value}, nil
	}

	if errors.Is(err, repository.ErrStorageUnavailable) {
		return rowResult[T]{}, errors.Wrapf(err, "row %d", index)
	}

	var skip *rowSkip
	if errors.As(err, &skip) {
		return rowResult[T]{index: index, skip: skip}, nil
	}

	return rowResult[T]{
		index: index,
		skip: &rowSkip{
			reason: usecase.SkipStorageError,
			detail: err.Error(),
		},
	}, nil
}

func (r *BatchRunner) failBatch(ctx context.Context, log *slog.Logger, policy batchPolicy, err error, elapsed time.Duration) error {
	if errors.Is(err, domainerrors.ErrTransferBatchEmpty) {
		r.metrics.ObserveBatch(policy.family, batchRejected, elapsed)
		log.Warn("Upload batch rejected, nothing was written", slog.Any("error", err))

		return err
	}

	r.metrics.ObserveBatch(policy.family, batchFailed, elapsed)
	log.Error("Upload batch aborted and rolled back", slog.Any("error", err))

	if errors.Is(err, repository.ErrStorageUnavailable) {
		return errors.Wrap(domainerrors.ErrStorageUnavailable, "upload aborted")
	}

	return errors.Wrap(domainerrors.ErrTransactionFailed, "upload aborted")
}

// publish announces a committed batch. Failures are logged only; the batch is already committed.
func (r *BatchRunner) publish(ctx context.Context, log *slog.Logger, family string, received, succeeded, skipped int) {
	if r.publisher == nil {
		return
	}

	event := &service.IngestionEvent{
		EventID:     uuid.New().String(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Family:      family,
		Received:    received,
		Succeeded:   succeeded,
		Skipped:     skipped,
		CompletedAt: r.now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.publisher.PublishIngestionEvent(publishCtx, event); err != nil {
		log.Warn("Failed to publish ingestion event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
