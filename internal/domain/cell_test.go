package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCellNormalizes(t *testing.T) {
	cell, err := ValidateCell("  b2 ")
	require.NoError(t, err)
	assert.Equal(t, "B2", cell)
}

func TestValidateCellMultiDigitColumn(t *testing.T) {
	cell, err := ValidateCell("c12")
	require.NoError(t, err)
	assert.Equal(t, "C12", cell)
}

func TestValidateCellTooShort(t *testing.T) {
	_, err := ValidateCell(" a ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "cell must look like A1")
}

func TestValidateCellCheckOrder(t *testing.T) {
	// A leading digit must fail on the row check, not the column check.
	_, err := ValidateCell("1A")
	assert.ErrorContains(t, err, "row must be a letter")

	_, err = ValidateCell("AA")
	assert.ErrorContains(t, err, "column must be a number")

	_, err = ValidateCell("A0")
	assert.ErrorContains(t, err, "column must be > 0")

	// The minus sign is not a digit.
	_, err = ValidateCell("A-1")
	assert.ErrorContains(t, err, "column must be a number")
}

func TestNormalizeCellSkipsFullValidation(t *testing.T) {
	cell, err := NormalizeCell(" 1a ")
	require.NoError(t, err)
	assert.Equal(t, "1A", cell)
}

func TestNewIDTrims(t *testing.T) {
	id, err := NewID("  d1  ")
	require.NoError(t, err)
	assert.Equal(t, "d1", id.Value())
}

func TestNewIDEmpty(t *testing.T) {
	_, err := NewID("   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIDEqualityByValue(t *testing.T) {
	a, err := NewID("d1")
	require.NoError(t, err)
	b, err := NewID(" d1 ")
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// IDs with the same text collapse to one map key.
	seen := map[ID]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
}
