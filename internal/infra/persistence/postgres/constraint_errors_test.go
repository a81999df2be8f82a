package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"testing"

	"venmito/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsStorageUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad conn", err: errors.Wrap(driver.ErrBadConn, "query"), want: true},
		{name: "context canceled", err: context.Canceled, want: true},
		{name: "wrapped canceled", err: errors.Wrap(errors.Wrap(context.Canceled, "tx"), "commit"), want: true},
		{name: "deadline", err: errors.Wrap(context.DeadlineExceeded, "insert"), want: true},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("refused")}, want: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: true},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, want: true},
		{name: "aborted transaction", err: &pgconn.PgError{Code: "25P02"}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: false},
		{name: "message pattern", err: errors.New("write: broken pipe"), want: true},
		{name: "already tagged", err: errors.Wrap(repository.ErrStorageUnavailable, "x"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isStorageUnavailable(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	fatal := storageError(driver.ErrBadConn, "failed to create person")
	assert.ErrorIs(t, fatal, repository.ErrStorageUnavailable)

	rowLevel := storageError(&pgconn.PgError{Code: "22001"}, "failed to create person")
	assert.NotErrorIs(t, rowLevel, repository.ErrStorageUnavailable)
	assert.Contains(t, rowLevel.Error(), "failed to create person")
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}
