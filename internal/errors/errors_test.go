package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "E1"}, "context")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	first := New("first")
	second := New("second")

	assert.True(t, IsAny(Wrap(second, "x"), first, second))
	assert.False(t, IsAny(New("other"), first, second))
	assert.False(t, IsAny(nil, first))
}
