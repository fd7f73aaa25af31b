package squareword

import "github.com/rs/zerolog"

// SearchObserver receives callbacks at the extension points of the square
// search. Implementations must be cheap; they run inside the inner search
// loop.
type SearchObserver interface {
	// CandidateAccepted is called when word is tentatively placed as row.
	CandidateAccepted(row int, word string)

	// Backtracked is called when the tentative word at row is retracted.
	Backtracked(row int)

	// SquareFound is called for every completed square, before it is
	// yielded to the consumer.
	SquareFound(sq Square)
}

type nopObserver struct{}

func (nopObserver) CandidateAccepted(row int, word string) {}
func (nopObserver) Backtracked(row int)                    {}
func (nopObserver) SquareFound(sq Square)                  {}

// LogObserver traces the search through a zerolog logger at debug level.
type LogObserver struct {
	Logger zerolog.Logger
}

func (o LogObserver) CandidateAccepted(row int, word string) {
	o.Logger.Debug().Int("row", row).Str("word", word).Msg("candidate accepted")
}

func (o LogObserver) Backtracked(row int) {
	o.Logger.Debug().Int("row", row).Msg("backtracked")
}

func (o LogObserver) SquareFound(sq Square) {
	o.Logger.Debug().Strs("rows", sq.Rows()).Msg("square found")
}
