// Package mapview renders the attraction grid as text.
package mapview

import (
	"fmt"
	"strings"

	"github.com/ykushnir/cityguide/internal/domain"
)

const cellWidth = 3

// MapView formats a fixed grid of lettered rows and numbered columns.
type MapView struct {
	rows []string
	cols int
}

// New validates the grid dimensions and returns a MapView.
func New(rows []string, cols int) (*MapView, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: the map needs at least one row", domain.ErrValidation)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%w: the map needs at least one column", domain.ErrValidation)
	}

	normalized := make([]string, len(rows))
	for i, r := range rows {
		normalized[i] = strings.ToUpper(strings.TrimSpace(r))
	}
	return &MapView{rows: normalized, cols: cols}, nil
}

// Render draws the grid, marking each cell present in occupiedCells with an X.
// Values of occupiedCells are attraction ids; only the keys matter here.
func (m *MapView) Render(occupiedCells map[string]string) string {
	indent := strings.Repeat(" ", 4)

	var header strings.Builder
	header.WriteString(indent)
	for c := 1; c <= m.cols; c++ {
		header.WriteString(fmt.Sprintf("%*d", cellWidth, c))
	}
	lines := []string{header.String()}

	for _, r := range m.rows {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%3s ", r))
		for c := 1; c <= m.cols; c++ {
			mark := "."
			if _, ok := occupiedCells[fmt.Sprintf("%s%d", r, c)]; ok {
				mark = "X"
			}
			row.WriteString(fmt.Sprintf("%*s", cellWidth, mark))
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "", "X = attraction, . = empty")
	return strings.Join(lines, "\n")
}

// NormalizeCellID is the lightweight cell check used for map lookups. Full
// format validation lives in domain.ValidateCell.
func (m *MapView) NormalizeCellID(cellID string) (string, error) {
	return domain.NormalizeCell(cellID)
}
