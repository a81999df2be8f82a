package repository

import (
	"context"

	"venmito/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for transaction and item persistence.
var (
	// ErrTransactionNotFound is returned when no transaction has the external id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrItemNotFound is returned when no item has the name.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItem is returned when an item with the same name already exists.
	ErrDuplicateItem = errors.New("item already exists")
)

// TransactionRepository defines the interface for transactions and their line items.
type TransactionRepository interface {
	// FindByExternalID retrieves a transaction by its external id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Transaction, error)

	// CreateTransaction persists a transaction header.
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error

	// AddTransactionItem persists one line of a transaction.
	AddTransactionItem(ctx context.Context, item *entity.TransactionItem) error

	// ListTransactions returns every transaction with its person and items.
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
}

// ItemRepository defines the interface for the item catalog.
type ItemRepository interface {
	// FindItemByName retrieves an item by exact name.
	FindItemByName(ctx context.Context, name string) (*entity.Item, error)

	// CreateItem persists a new item.
	CreateItem(ctx context.Context, item *entity.Item) error

	// ListItems returns the catalog ordered by name.
	ListItems(ctx context.Context) ([]*entity.Item, error)
}
