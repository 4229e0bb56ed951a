package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	author, err := NewAuthor(1, "John Doe")
	require.NoError(t, err)

	assert.Equal(t, int64(1), author.ID())
	assert.Equal(t, "John Doe", author.Name())
	assert.Equal(t, "<Author John Doe>", author.String())
}

func TestNewAuthor_InvalidName(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"one character", "J"},
		{"seventeen characters", "Johnathan Doemore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := NewAuthor(1, tt.value)
			assert.Nil(t, author)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "name", ve.Field)
		})
	}
}

func TestNewAuthor_NegativeID(t *testing.T) {
	_, err := NewAuthor(-1, "John Doe")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthor_RejectChangeAfterConstruction(t *testing.T) {
	author, err := NewAuthor(1, "John Doe")
	require.NoError(t, err)

	assert.False(t, author.SetName("Jane Doe"))
	assert.Equal(t, "John Doe", author.Name())
}
