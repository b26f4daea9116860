package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// TargetGivens returns the clue count the generator carves toward. The
// target is a floor, not a guarantee: carving stops early rather than
// give up solution uniqueness.
func (d Difficulty) TargetGivens() int {
	switch d {
	case Easy:
		return 42
	case Hard:
		return 26
	default:
		return 34
	}
}

// ParseDifficulty maps a user-supplied label to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Board is a 9x9 grid of values in 0..9, 0 meaning empty. It is a value
// type: assignment and parameter passing copy the whole grid, so callers
// never observe in-place mutation of a board they handed out.
type Board [9][9]int

// Position identifies a cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GivenMask marks which puzzle cells are immutable clues.
type GivenMask [9][9]bool

// Givens derives the clue mask from the nonzero cells of a puzzle board.
func (b Board) Givens() GivenMask {
	var mask GivenMask
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			mask[r][c] = b[r][c] != 0
		}
	}
	return mask
}

// CountFilled returns the number of nonzero cells.
func (b Board) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Puzzle is an immutable (puzzle, solution) snapshot produced by the generator.
type Puzzle struct {
	Grid       Board      `json:"grid"`
	Solution   Board      `json:"solution"`
	Givens     GivenMask  `json:"givens"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewPuzzle bundles a carved puzzle with its solution; the given mask is
// derived once from the puzzle's nonzero cells.
func NewPuzzle(grid, solution Board, d Difficulty) *Puzzle {
	return &Puzzle{
		Grid:       grid,
		Solution:   solution,
		Givens:     grid.Givens(),
		Difficulty: d,
	}
}

// ToJSON converts the puzzle to JSON bytes
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}

// ErrInvalidShape reports input that is not 9 rows of 9 values in 0..9.
var ErrInvalidShape = errors.New("board must be 9 rows of 9 integers in 0..9")

// BoardFromRows converts untrusted row data into a Board, enforcing the
// structural contract before any algorithmic code sees the values.
func BoardFromRows(rows [][]int) (Board, error) {
	if len(rows) != 9 {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrInvalidShape, len(rows))
	}
	var b Board
	for r, row := range rows {
		if len(row) != 9 {
			return Board{}, fmt.Errorf("%w: row %d has %d values", ErrInvalidShape, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return Board{}, fmt.Errorf("%w: value %d at row %d col %d", ErrInvalidShape, v, r, c)
			}
			b[r][c] = v
		}
	}
	return b, nil
}

// ParseBoard decodes a JSON array-of-arrays into a Board. Non-integer
// values fail the decode, so the shape contract covers types too.
func ParseBoard(data []byte) (Board, error) {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return BoardFromRows(rows)
}

// IsValidBoardShape reports whether raw JSON decodes to exactly 9 rows of
// 9 integers, each in 0..9.
func IsValidBoardShape(data []byte) bool {
	_, err := ParseBoard(data)
	return err == nil
}
