package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStock(t *testing.T) {
	s, err := NewStock(7, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Available())

	_, err = NewStock(7, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStock_Deduct(t *testing.T) {
	s, err := NewStock(7, 5)
	require.NoError(t, err)

	require.NoError(t, s.Deduct(3))
	assert.Equal(t, 2, s.Available())

	// 超出可用数量
	err = s.Deduct(3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, s.Available())

	err = s.Deduct(0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStock_Increase(t *testing.T) {
	s, err := NewStock(7, 2)
	require.NoError(t, err)

	require.NoError(t, s.Increase(10))
	assert.Equal(t, 12, s.Available())

	err = s.Increase(-1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
