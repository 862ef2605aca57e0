package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Cheque is a numbered token. Its value is its face value; the zero value
// means "no cheque".
type Cheque uint8

const (
	MinCheque Cheque = 1
	MaxCheque Cheque = 16
)

// StartingCheque is displayed on the board when the game begins.
const StartingCheque = MinCheque

// Game constants shared by the orchestrator and the estimator.
const (
	GameRounds               = 3
	RoundEndPolicemen        = 7
	RoundEndPolicemenTwoSeat = 5
	FullBoardCards           = 7
	MinPlayers               = 2
	MaxPlayers               = 5
)

// ErrUnsupportedPlayerCount is returned for player counts outside 2..5.
var ErrUnsupportedPlayerCount = errors.New("unsupported number of players")

// NewCheque validates a face value.
func NewCheque(value int) (Cheque, error) {
	if value < int(MinCheque) || value > int(MaxCheque) {
		return 0, fmt.Errorf("invalid cheque value %d", value)
	}
	return Cheque(value), nil
}

// Value returns the face value.
func (c Cheque) Value() int { return int(c) }

func (c Cheque) Valid() bool { return c >= MinCheque && c <= MaxCheque }

func (c Cheque) String() string {
	return fmt.Sprintf("Cheque(%d)", uint8(c))
}

var startingSets = map[int][][]Cheque{
	2: {
		{2, 5, 6, 9},
		{3, 4, 7, 8},
	},
	3: {
		{2, 5, 8, 13},
		{3, 6, 9, 12},
		{4, 7, 10, 11},
	},
	4: {
		{2, 6, 13},
		{3, 7, 12},
		{4, 8, 11},
		{5, 9, 10},
	},
	5: {
		{2, 7, 16},
		{3, 8, 15},
		{4, 9, 14},
		{5, 10, 13},
		{6, 11, 12},
	},
}

// StartingCheques returns fresh copies of the cheque sets dealt to each seat
// for the given player count.
func StartingCheques(players int) ([][]Cheque, error) {
	sets, ok := startingSets[players]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPlayerCount, players)
	}
	out := make([][]Cheque, len(sets))
	for i, s := range sets {
		out[i] = slices.Clone(s)
	}
	return out, nil
}

// SumCheques returns the total face value.
func SumCheques(cheques []Cheque) int {
	total := 0
	for _, c := range cheques {
		total += c.Value()
	}
	return total
}

// HighestCheque returns the highest cheque and false when the list is empty.
func HighestCheque(cheques []Cheque) (Cheque, bool) {
	if len(cheques) == 0 {
		return 0, false
	}
	return slices.Max(cheques), true
}
