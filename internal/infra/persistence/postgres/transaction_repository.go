package postgres

import (
	"context"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindByExternalID retrieves the first transaction with the external id.
func (repo *transactionRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Transaction, error) {
	if externalID == "" {
		return nil, repository.ErrTransactionNotFound
	}

	var transactionM model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Order("id ASC").
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, storageError(err, "failed to find transaction by external id")
	}

	return toTransactionDomain(&transactionM), nil
}

// CreateTransaction persists the header only; lines are added with AddTransactionItem.
func (repo *transactionRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Omit("Person", "Items").Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrPersonNotFound, "invalid person reference")
		}

		return storageError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// AddTransactionItem persists one line of a transaction.
func (repo *transactionRepository) AddTransactionItem(ctx context.Context, item *entity.TransactionItem) error {
	itemM := fromTransactionItemDomain(item)

	if err := repo.db.WithContext(ctx).Omit("Item").Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrItemNotFound, "invalid transaction or item reference")
		}

		return storageError(err, "failed to create transaction item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// ListTransactions returns every transaction with its person and line items.
func (repo *transactionRepository) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Person").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("transaction_items.id ASC") }).
		Preload("Items.Item").
		Order("id ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, storageError(err, "failed to list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// FindItemByName retrieves an item by exact name.
func (repo *itemRepository) FindItemByName(ctx context.Context, name string) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, storageError(err, "failed to find item by name")
	}

	return toItemDomain(&itemM), nil
}

// CreateItem persists a new catalog item.
func (repo *itemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateItem
		}

		return storageError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// ListItems returns the catalog ordered by name.
func (repo *itemRepository) ListItems(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, storageError(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	transaction := &entity.Transaction{
		ID:              data.ID,
		ExternalID:      derefString(data.ExternalID),
		PersonID:        data.PeopleID,
		Phone:           data.Phone,
		Store:           data.Store,
		TransactionDate: data.TransactionDate,
		TotalAmount:     data.TotalAmount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Person:          toPersonSummary(data.Person),
	}

	for _, itemM := range data.Items {
		transaction.Items = append(transaction.Items, toTransactionItemDomain(itemM))
	}

	return transaction
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:              data.ID,
		ExternalID:      nullableString(data.ExternalID),
		PeopleID:        data.PersonID,
		Phone:           data.Phone,
		Store:           data.Store,
		TransactionDate: data.TransactionDate,
		TotalAmount:     data.TotalAmount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toTransactionItemDomain(data *model.TransactionItemModel) *entity.TransactionItem {
	if data == nil {
		return nil
	}

	item := &entity.TransactionItem{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		ItemID:        data.ItemID,
		Quantity:      data.Quantity,
		PricePerItem:  data.PricePerItem,
		TotalPrice:    data.TotalPrice,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Item != nil {
		item.ItemName = data.Item.Name
	}

	return item
}

func fromTransactionItemDomain(data *entity.TransactionItem) *model.TransactionItemModel {
	if data == nil {
		return nil
	}

	return &model.TransactionItemModel{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		ItemID:        data.ItemID,
		Quantity:      data.Quantity,
		PricePerItem:  data.PricePerItem,
		TotalPrice:    data.TotalPrice,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:           data.ID,
		Name:         data.Name,
		DefaultPrice: data.DefaultPrice,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:           data.ID,
		Name:         data.Name,
		DefaultPrice: data.DefaultPrice,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
