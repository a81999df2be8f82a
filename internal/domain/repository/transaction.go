package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrStorageUnavailable marks failures of the storage itself (lost connection, cancelled context).
// A batch that hits it is aborted and rolled back as a whole.
var ErrStorageUnavailable = errors.New("storage unavailable")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	NewPersonRepository() PersonRepository
	NewDeviceRepository() DeviceRepository
	NewPromotionRepository() PromotionRepository
	NewTransferRepository() TransferRepository
	NewTransactionRepository() TransactionRepository
	NewItemRepository() ItemRepository

	// Savepoint runs fn inside a nested savepoint of the current transaction.
	// When fn fails only the writes made since the savepoint are discarded; the outer transaction stays usable.
	Savepoint(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}
