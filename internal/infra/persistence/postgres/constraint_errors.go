package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	"venmito/internal/domain/repository"
	"venmito/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE classes that mean the connection or the outer transaction is gone.
var fatalSQLStatePrefixes = []string{
	"08",    // connection_exception
	"57P",   // operator_intervention (admin shutdown, crash shutdown, cannot connect now)
	"25P02", // in_failed_sql_transaction
	"53",    // insufficient_resources
}

// Sentinels that always abort the batch, wherever they appear in the chain.
var fatalSentinels = []error{
	repository.ErrStorageUnavailable,
	driver.ErrBadConn,
	context.Canceled,
	context.DeadlineExceeded,
}

var fatalMessagePatterns = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"conn closed",
	"server closed the connection",
	"unexpected eof",
	"current transaction is aborted",
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	if hasSQLState(err, "23502") {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, "23514")
}

// isStorageUnavailable reports whether err means the database itself cannot serve the batch any more.
func isStorageUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.IsAny(err, fatalSentinels...) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, prefix := range fatalSQLStatePrefixes {
			if strings.HasPrefix(pgErr.Code, prefix) {
				return true
			}
		}

		return false
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range fatalMessagePatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// storageError tags fatal errors with repository.ErrStorageUnavailable and wraps everything else with msg.
func storageError(err error, msg string) error {
	if isStorageUnavailable(err) {
		return errors.Wrapf(repository.ErrStorageUnavailable, "%s: %v", msg, err)
	}

	return errors.Wrap(err, msg)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
