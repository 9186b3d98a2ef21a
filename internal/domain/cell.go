package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeCell trims and uppercases a map cell address. It only checks the
// minimum length; ValidateCell does the full format check.
func NormalizeCell(raw string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if len(v) < 2 {
		return "", fmt.Errorf("%w: cell must look like A1", ErrValidation)
	}
	return v, nil
}

// ValidateCell normalizes and fully validates a cell address of the form
// <row letter><column number>, e.g. "B2". The row check runs before the
// column check, so "1A" fails on the row letter.
func ValidateCell(raw string) (string, error) {
	v, err := NormalizeCell(raw)
	if err != nil {
		return "", err
	}

	row := v[0]
	col := v[1:]

	if row < 'A' || row > 'Z' {
		return "", fmt.Errorf("%w: row must be a letter", ErrValidation)
	}
	for i := 0; i < len(col); i++ {
		if col[i] < '0' || col[i] > '9' {
			return "", fmt.Errorf("%w: column must be a number", ErrValidation)
		}
	}
	n, err := strconv.Atoi(col)
	if err != nil {
		return "", fmt.Errorf("%w: column must be a number", ErrValidation)
	}
	if n <= 0 {
		return "", fmt.Errorf("%w: column must be > 0", ErrValidation)
	}
	return v, nil
}
