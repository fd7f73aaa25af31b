package squareword

import (
	"fmt"
	"strings"
)

// Square is a completed N×N word square.
//
// Every row reads as a vocabulary word, and the grid is symmetric across its
// main diagonal, so every column reads as the same word as its row. Row order
// matters: a square and its reflection are distinct values.
type Square struct {
	rows []string
}

func NewSquare(rows []string) Square {
	return Square{
		rows: rows,
	}
}

// Size returns the side length N.
func (s Square) Size() int {
	return len(s.rows)
}

// Row returns the i-th row word.
func (s Square) Row(i int) string {
	return s.rows[i]
}

// Rows returns a copy of the row words, top to bottom.
func (s Square) Rows() []string {
	out := make([]string, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s Square) At(x, y int) rune {
	return rune(s.rows[y][x])
}

// WordsAreUnique reports whether no word appears on more than one row.
func (s Square) WordsAreUnique() bool {
	seen := make(map[string]bool, len(s.rows))
	for _, row := range s.rows {
		if seen[row] {
			return false
		}
		seen[row] = true
	}
	return true
}

func (s Square) Repr() string {
	return strings.Join(s.rows, "\n")
}

func (s Square) DebugString() string {
	return fmt.Sprintf("Square{size: %d, rows: %v}", s.Size(), s.rows)
}
