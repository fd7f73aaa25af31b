package squareword

import (
	"context"
	"iter"

	"crosswarped.com/squareword/pkg/primitives"
)

// Generator drives a backtracking search over rows of a word square, choosing
// each row through the constrained word enumerator.
type Generator struct {
	// Limit caps the number of squares produced. Zero or negative means
	// unlimited; the consumer can always stop iterating early instead.
	Limit int

	// Observer receives search callbacks. Never nil after CreateGenerator.
	Observer SearchObserver

	trie *primitives.Trie
}

func CreateGenerator(trie *primitives.Trie, limit int, observer SearchObserver) *Generator {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Generator{
		Limit:    limit,
		Observer: observer,
		trie:     trie,
	}
}

// WordLength returns the side length of the squares being searched for.
func (g *Generator) WordLength() int {
	return g.trie.WordLength()
}

// FindSquares returns a lazy sequence of complete squares in deterministic
// (row-wise alphabetical) order.
//
// Exhausting the vocabulary is not an error: with no usable words the
// sequence is simply empty. The search stops when ctx is done, when Limit
// squares have been produced, or when the consumer stops iterating.
func (g *Generator) FindSquares(ctx context.Context) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		if g.trie == nil || g.trie.Len() == 0 {
			return
		}

		s := &search{
			gen:  g,
			rows: make([]string, 0, g.trie.WordLength()),
		}
		s.nextRow(ctx, yield)
	}
}

type search struct {
	gen     *Generator
	rows    []string
	emitted int
}

// nextRow extends the partial square by one row, recursing until N rows are
// placed. It returns false once iteration should stop entirely.
func (s *search) nextRow(ctx context.Context, yield func(Square) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	n := s.gen.trie.WordLength()
	if len(s.rows) == n {
		sq := NewSquare(append([]string(nil), s.rows...))
		s.gen.Observer.SquareFound(sq)
		if !yield(sq) {
			return false
		}
		s.emitted++
		return s.gen.Limit <= 0 || s.emitted < s.gen.Limit
	}

	row := len(s.rows)
	constraints := make([]*primitives.CharSet, n)
	for j := range constraints {
		if j < row {
			// This cell is the row-th character of row j, already
			// fixed: the grid is symmetric across the diagonal.
			cs, err := primitives.SingletonCharSet(rune(s.rows[j][row]))
			if err != nil {
				return false
			}
			constraints[j] = cs
		} else {
			constraints[j] = primitives.FullCharSet()
		}
	}

	for word := range primitives.EnumerateWords(s.gen.trie.Root(), constraints) {
		s.rows = append(s.rows, word)
		s.gen.Observer.CandidateAccepted(row, word)

		more := s.nextRow(ctx, yield)

		s.rows = s.rows[:len(s.rows)-1]
		s.gen.Observer.Backtracked(row)

		if !more {
			return false
		}
	}
	return true
}
