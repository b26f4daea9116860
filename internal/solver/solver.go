package solver

import (
	"errors"

	"sudoku_core_go/internal/types"
)

// ErrUnsolvable is returned when backtracking exhausts the search without
// completing the grid. Generator-produced puzzles are solvable by
// construction, so this only happens for malformed or contradictory input.
var ErrUnsolvable = errors.New("board has no solution")

// IsValidPlacement reports whether value may occupy (row, col): true when
// value is 0, otherwise false iff value already appears elsewhere in the
// same row, column or 3x3 block. The cell itself is excluded from the
// comparison, so the check works both for empty target cells and for
// auditing cells that are already filled.
func IsValidPlacement(b *types.Board, row, col, value int) bool {
	if value == 0 {
		return true
	}

	// Check row and column
	for i := 0; i < 9; i++ {
		if i != col && b[row][i] == value {
			return false
		}
		if i != row && b[i][col] == value {
			return false
		}
	}

	// Check block
	blockRow, blockCol := (row/3)*3, (col/3)*3
	for r := blockRow; r < blockRow+3; r++ {
		for c := blockCol; c < blockCol+3; c++ {
			if (r != row || c != col) && b[r][c] == value {
				return false
			}
		}
	}

	return true
}

// findEmpty scans row-major for the next empty cell.
func findEmpty(b *types.Board) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve completes the board by depth-first backtracking and returns the
// solved grid, or ErrUnsolvable when no completion exists. The caller's
// board is never mutated; the recursion works on a private copy.
func Solve(b types.Board) (types.Board, error) {
	if !fill(&b) {
		return types.Board{}, ErrUnsolvable
	}
	return b, nil
}

func fill(b *types.Board) bool {
	row, col, ok := findEmpty(b)
	if !ok {
		return true
	}

	for v := 1; v <= 9; v++ {
		if IsValidPlacement(b, row, col, v) {
			b[row][col] = v
			if fill(b) {
				return true
			}
			b[row][col] = 0
		}
	}

	return false
}

// CountSolutions counts distinct completions of the board, up to limit.
// The traversal aborts at every recursion level once the counter reaches
// limit, so asking "is there more than one?" stays cheap even on sparse
// grids.
func CountSolutions(b types.Board, limit int) int {
	if limit <= 0 {
		return 0
	}
	count := 0
	countFill(&b, limit, &count)
	return count
}

func countFill(b *types.Board, limit int, count *int) {
	if *count >= limit {
		return
	}

	row, col, ok := findEmpty(b)
	if !ok {
		*count++
		return
	}

	for v := 1; v <= 9; v++ {
		if *count >= limit {
			return
		}
		if IsValidPlacement(b, row, col, v) {
			b[row][col] = v
			countFill(b, limit, count)
			b[row][col] = 0
		}
	}
}

// HasUniqueSolution reports whether the board admits exactly one completion.
func HasUniqueSolution(b types.Board) bool {
	return CountSolutions(b, 2) == 1
}

// IsBoardComplete reports whether the board is fully filled and every cell
// is consistent with the rest of the board as it stands. This is a
// self-consistency check, not a comparison against a stored solution.
func IsBoardComplete(b *types.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			if v == 0 || !IsValidPlacement(b, r, c, v) {
				return false
			}
		}
	}
	return true
}

// Conflicts returns the positions of all nonzero cells that violate a
// row, column or block constraint on the current board. Both cells of a
// duplicated pair are reported, which is what live feedback on a
// partially-filled player grid needs.
func Conflicts(b *types.Board) []types.Position {
	conflicts := make([]types.Position, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] != 0 && !IsValidPlacement(b, r, c, b[r][c]) {
				conflicts = append(conflicts, types.Position{Row: r, Col: c})
			}
		}
	}
	return conflicts
}
