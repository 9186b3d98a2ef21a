package mapview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykushnir/cityguide/internal/domain"
)

func TestNewValidation(t *testing.T) {
	_, err := New(nil, 5)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = New([]string{"A"}, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRenderEmptyGrid(t *testing.T) {
	m, err := New([]string{"a", "b"}, 3)
	require.NoError(t, err)

	got := m.Render(nil)

	want := strings.Join([]string{
		"      1  2  3",
		"  A   .  .  .",
		"  B   .  .  .",
		"",
		"X = attraction, . = empty",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderMarksOccupiedCells(t *testing.T) {
	m, err := New([]string{"A", "B"}, 2)
	require.NoError(t, err)

	got := m.Render(map[string]string{"B2": "d1"})

	assert.Contains(t, got, "  B   .  X")
	assert.Contains(t, got, "  A   .  .")
}

func TestNormalizeCellID(t *testing.T) {
	m, err := New([]string{"A"}, 1)
	require.NoError(t, err)

	cell, err := m.NormalizeCellID(" a1 ")
	require.NoError(t, err)
	assert.Equal(t, "A1", cell)

	_, err = m.NormalizeCellID("a")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
