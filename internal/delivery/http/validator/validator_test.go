package validator

import (
	"testing"

	domainerrors "venmito/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	Diagnostics bool   `query:"diagnostics"`
	Format      string `query:"format" validate:"omitempty,oneof=json yaml csv xml"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&listQuery{Format: "csv"}))

	err := v.Validate(&listQuery{Format: "toml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "format failed oneof")
}
