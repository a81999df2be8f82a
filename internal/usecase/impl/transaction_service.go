package impl

import (
	"context"
	"log/slog"

	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/domain/constants"
	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type transactionService struct {
	runner          *BatchRunner
	transactionRepo repository.TransactionRepository
	itemRepo        repository.ItemRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	Runner          *BatchRunner
	TransactionRepo repository.TransactionRepository
	ItemRepo        repository.ItemRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		runner:          params.Runner,
		transactionRepo: params.TransactionRepo,
		itemRepo:        params.ItemRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadTransactions inserts transactions whose external id is new, creating catalog items on first sight.
func (srv *transactionService) UploadTransactions(ctx context.Context, records []usecase.RawRecord) (*usecase.BatchResult[*entity.Transaction], error) {
	return runBatch(ctx, srv.runner, batchPolicy{family: constants.FamilyTransactions}, records, srv.insertTransaction)
}

func (srv *transactionService) insertTransaction(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord) (*entity.Transaction, error) {
	rec, err := srv.runner.normalizer.transaction(record)
	if err != nil {
		return nil, skipRow(usecase.SkipInvalidRecord, "", "%v", err)
	}
	key := identifierKey(rec.ExternalID, rec.Phone)

	if rec.Phone == "" {
		return nil, skipRow(usecase.SkipPersonNotFound, key, "transaction has no phone")
	}

	person, err := repos.NewPersonRepository().FindByTelephone(ctx, rec.Phone)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, skipRow(usecase.SkipPersonNotFound, key, "no person with telephone %q", rec.Phone)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person by telephone")
	}

	transactionRepo := repos.NewTransactionRepository()
	if rec.ExternalID != "" {
		_, err := transactionRepo.FindByExternalID(ctx, rec.ExternalID)
		if err == nil {
			return nil, skipRow(usecase.SkipDuplicateExternalID, key, "transaction already recorded")
		}
		if !errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(err, "failed to find transaction by external id")
		}
	}

	personID := person.ID
	transaction := &entity.Transaction{
		ExternalID:      rec.ExternalID,
		PersonID:        &personID,
		Phone:           rec.Phone,
		Store:           rec.Store,
		TransactionDate: rec.Date,
		TotalAmount:     rec.Total,
		Person:          person.Summary(),
	}
	if err := transactionRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	for i, line := range rec.Lines {
		item, err := srv.addLine(ctx, repos, transaction.ID, line)
		if err != nil {
			if errors.Is(err, repository.ErrStorageUnavailable) {
				return nil, err
			}
			srv.log(ctx).Warn("Skipping transaction item",
				slog.String("key", key),
				slog.Int("line", i),
				slog.String("item", line.Name),
				slog.Any("error", err),
			)

			continue
		}
		transaction.Items = append(transaction.Items, item)
	}

	return transaction, nil
}

// addLine links one line to the transaction inside its own savepoint.
func (srv *transactionService) addLine(ctx context.Context, repos repository.RepositoryFactory, transactionID uint, line transactionLine) (*entity.TransactionItem, error) {
	if line.Name == "" {
		return nil, errors.New("item has no name")
	}

	var added *entity.TransactionItem
	err := repos.Savepoint(ctx, func(sp repository.RepositoryFactory) error {
		item, err := resolveItem(ctx, sp, line)
		if err != nil {
			return err
		}

		added = &entity.TransactionItem{
			TransactionID: transactionID,
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      line.Quantity,
			PricePerItem:  line.UnitPrice,
			TotalPrice:    line.LineTotal,
		}

		return errors.Wrap(sp.NewTransactionRepository().AddTransactionItem(ctx, added), "failed to add transaction item")
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// resolveItem finds the catalog item by name or creates it with the line's unit price.
func resolveItem(ctx context.Context, repos repository.RepositoryFactory, line transactionLine) (*entity.Item, error) {
	itemRepo := repos.NewItemRepository()

	item, err := itemRepo.FindItemByName(ctx, line.Name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repository.ErrItemNotFound) {
		return nil, errors.Wrap(err, "failed to find item")
	}

	// A failed insert poisons the enclosing savepoint, so the insert gets its own.
	item = &entity.Item{Name: line.Name, DefaultPrice: line.DefaultPrice}
	err = repos.Savepoint(ctx, func(sp repository.RepositoryFactory) error {
		return sp.NewItemRepository().CreateItem(ctx, item)
	})
	if errors.Is(err, repository.ErrDuplicateItem) {
		return itemRepo.FindItemByName(ctx, line.Name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	return item, nil
}

// ListTransactions returns every transaction with its person and items.
func (srv *transactionService) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// ListItems returns the item catalog.
func (srv *transactionService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}
