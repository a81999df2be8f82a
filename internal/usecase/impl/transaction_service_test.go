package impl

import (
	"testing"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walmartTransaction(id string) usecase.RawRecord {
	return usecase.RawRecord{
		"@_id":            id,
		"phone":           "+1-555-0100",
		"store":           "Walmart",
		"transactionDate": "2024-03-01",
		"items": map[string]any{
			"item": []any{
				map[string]any{"item": "Milk", "price": "6.00", "price_per_item": "2.00", "quantity": "3"},
				map[string]any{"item": "Bread", "price": "2.50", "quantity": "1"},
			},
		},
	}
}

func TestTransactionService_UploadTransactions_InsertsWithItems(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	result, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{walmartTransaction("T1")})

	require.NoError(t, err)
	require.Len(t, result.Succeeded, 1)

	tx := result.Succeeded[0]
	assert.Equal(t, "T1", tx.ExternalID)
	assert.True(t, decimal.RequireFromString("8.50").Equal(tx.TotalAmount))
	require.Len(t, tx.Items, 2)
	assert.Equal(t, "Milk", tx.Items[0].ItemName)
	assert.Equal(t, 3, tx.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("6").Equal(tx.Items[0].TotalPrice))

	items, err := f.transactions.ListItems(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, decimal.RequireFromString("2").Equal(items[0].DefaultPrice))
	assert.True(t, decimal.RequireFromString("2.5").Equal(items[1].DefaultPrice))
}

func TestTransactionService_UploadTransactions_DedupByExternalID(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	_, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{walmartTransaction("T1")})
	require.NoError(t, err)

	result, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{
		walmartTransaction("T1"),
		walmartTransaction("T2"),
	})
	require.NoError(t, err)

	assert.Len(t, result.Succeeded, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, usecase.SkipDuplicateExternalID, result.Skipped[0].Reason)
	assert.Len(t, f.store.state.transactions, 2)
	// Catalog items are reused by name.
	assert.Len(t, f.store.state.items, 2)
}

func TestTransactionService_UploadTransactions_WithoutExternalIDAlwaysInserts(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	record := walmartTransaction("")
	for range 2 {
		_, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{record})
		require.NoError(t, err)
	}

	assert.Len(t, f.store.state.transactions, 2)
}

func TestTransactionService_UploadTransactions_UnknownPhoneIsSkipped(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	record := walmartTransaction("T9")
	record["phone"] = "+1-555-9999"

	result, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{record})

	require.NoError(t, err)
	assert.Empty(t, result.Succeeded)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, usecase.SkipPersonNotFound, result.Skipped[0].Reason)
	assert.Empty(t, f.store.state.transactions)
}

func TestTransactionService_UploadTransactions_UnnamedLineIsDropped(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)

	result, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{{
		"id":    "T3",
		"phone": "+1-555-0100",
		"store": "Target",
		"date":  "2024-03-02",
		"items": []any{
			map[string]any{"item": "", "price": "1.00"},
			map[string]any{"name": "Milk", "price": "2.00"},
		},
	}})

	require.NoError(t, err)
	require.Len(t, result.Succeeded, 1)
	assert.Len(t, result.Succeeded[0].Items, 1)
	assert.True(t, decimal.RequireFromString("3").Equal(result.Succeeded[0].TotalAmount))
	assert.Len(t, f.store.state.lines, 1)
}

func TestTransactionService_UploadTransactions_FailedLineRollsBackOnlyThatLine(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowEffects()
	f.seedPeople(t)
	f.store.fail("AddTransactionItem", func(arg any) error {
		if arg.(*entity.TransactionItem).ItemName == "Bread" {
			return errors.New("foreign key violation")
		}

		return nil
	})

	result, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{walmartTransaction("T1")})

	require.NoError(t, err)
	require.Len(t, result.Succeeded, 1)
	assert.Len(t, result.Succeeded[0].Items, 1)
	// Bread was created inside the failed line's savepoint and rolled back with it.
	require.Len(t, f.store.state.items, 1)
	assert.Equal(t, "Milk", f.store.state.items[0].Name)
}

func TestTransactionService_UploadTransactions_FatalLineAbortsBatch(t *testing.T) {
	f := newEngineFixture(t, 0)
	f.allowMetrics()
	f.seedPeople(t)
	f.store.fail("CreateItem", func(any) error {
		return errors.Wrap(repository.ErrStorageUnavailable, "server closed the connection unexpectedly")
	})

	_, err := f.transactions.UploadTransactions(t.Context(), []usecase.RawRecord{walmartTransaction("T1")})

	require.Error(t, err)
	assert.Empty(t, f.store.state.transactions)
	assert.Empty(t, f.store.state.items)
}
