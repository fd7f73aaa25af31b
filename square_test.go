package squareword

import (
	"testing"
)

func TestSquare_Repr(t *testing.T) {
	sq := NewSquare([]string{"cat", "are", "ten"})
	want := "cat\nare\nten"
	if got := sq.Repr(); got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
}

func TestSquare_At(t *testing.T) {
	sq := NewSquare([]string{"cat", "are", "ten"})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top left", 0, 0, 'c'},
		{"x is column", 2, 0, 't'},
		{"y is row", 0, 2, 't'},
		{"bottom right", 2, 2, 'n'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %c, want %c", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSquare_RowsIsACopy(t *testing.T) {
	sq := NewSquare([]string{"ab", "ba"})
	rows := sq.Rows()
	rows[0] = "xx"
	if sq.Row(0) != "ab" {
		t.Errorf("mutating Rows() result changed the square: Row(0) = %q", sq.Row(0))
	}
}

func TestSquare_WordsAreUnique(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"all distinct", []string{"cat", "are", "ten"}, true},
		{"repeated row", []string{"aaa", "aaa", "aaa"}, false},
		{"single row", []string{"a"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := NewSquare(tt.rows)
			if got := sq.WordsAreUnique(); got != tt.want {
				t.Errorf("WordsAreUnique() = %v, want %v", got, tt.want)
			}
		})
	}
}
