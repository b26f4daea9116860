package generator

import (
	"math/rand"
	"time"

	"sudoku_core_go/internal/solver"
	"sudoku_core_go/internal/types"
)

// PuzzleGenerator interface defines methods for generating Sudoku puzzles
type PuzzleGenerator interface {
	Generate() *types.Puzzle
	SetDifficulty(d types.Difficulty) error
}

// ClassicGenerator produces puzzles with a provably unique solution.
// Every instance owns its random source and working grid, so independent
// generators can run concurrently without locking.
type ClassicGenerator struct {
	difficulty types.Difficulty
	rng        *rand.Rand
}

func NewClassicGenerator(d types.Difficulty) *ClassicGenerator {
	return &ClassicGenerator{
		difficulty: d,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed pins the random source so runs can be reproduced.
func (g *ClassicGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

func (g *ClassicGenerator) SetDifficulty(d types.Difficulty) error {
	parsed, err := types.ParseDifficulty(string(d))
	if err != nil {
		return err
	}
	g.difficulty = parsed
	return nil
}

// Generate builds a randomized complete grid, then carves cells out of it
// while the solution stays unique. The returned pair is a fresh snapshot
// on every call.
func (g *ClassicGenerator) Generate() *types.Puzzle {
	var solution types.Board
	if !g.fillGrid(&solution) {
		// An empty 9x9 grid always admits a complete fill; reaching this
		// branch means the backtracking itself is broken.
		panic("sudoku: backtracking fill failed on an empty grid")
	}
	puzzle := g.carve(solution)
	return types.NewPuzzle(puzzle, solution, g.difficulty)
}

// fillGrid runs the same backtracking as the solver, but tries the nine
// candidate digits in a fresh shuffled order at every cell so repeated
// runs yield different grids.
func (g *ClassicGenerator) fillGrid(b *types.Board) bool {
	row, col, empty := nextEmpty(b)
	if !empty {
		return true
	}

	for _, n := range g.rng.Perm(9) {
		v := n + 1
		if solver.IsValidPlacement(b, row, col, v) {
			b[row][col] = v
			if g.fillGrid(b) {
				return true
			}
			b[row][col] = 0
		}
	}

	return false
}

func nextEmpty(b *types.Board) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// carve walks a random permutation of all 81 positions, clearing each
// cell only when the puzzle still has exactly one solution afterwards.
// Carving stops at the difficulty's target given-count; if the
// permutation runs out first, the surplus givens are accepted as-is.
func (g *ClassicGenerator) carve(solution types.Board) types.Board {
	puzzle := solution
	remaining := 81
	target := g.difficulty.TargetGivens()

	for _, pos := range g.rng.Perm(81) {
		if remaining <= target {
			break
		}
		row, col := pos/9, pos%9
		removed := puzzle[row][col]
		puzzle[row][col] = 0
		if solver.CountSolutions(puzzle, 2) == 1 {
			remaining--
		} else {
			puzzle[row][col] = removed
		}
	}

	return puzzle
}
