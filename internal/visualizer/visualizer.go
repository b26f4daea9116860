package visualizer

import (
	"fmt"
	"strings"

	"sudoku_core_go/internal/types"
)

// Visualizer handles board visualization
type Visualizer struct {
	board types.Board
}

func NewVisualizer(b types.Board) *Visualizer {
	return &Visualizer{board: b}
}

// Print writes the board to stdout with 3x3 block separators, using a
// dot for empty cells.
func (v *Visualizer) Print() {
	printHorizontalBorder()

	for i := 0; i < 9; i++ {
		fmt.Print("│ ")
		for j := 0; j < 9; j++ {
			if v.board[i][j] == 0 {
				fmt.Print(".")
			} else {
				fmt.Printf("%d", v.board[i][j])
			}
			fmt.Print(" ")

			if (j+1)%3 == 0 && j < 8 {
				fmt.Print("│ ")
			}
		}
		fmt.Println("│")

		if (i+1)%3 == 0 && i < 8 {
			printHorizontalBorder()
		}
	}

	printHorizontalBorder()
}

func printHorizontalBorder() {
	fmt.Print("├")
	for i := 0; i < 9; i++ {
		fmt.Print(strings.Repeat("─", 2))
		if (i+1)%3 == 0 && i < 8 {
			fmt.Print("┼")
		}
	}
	fmt.Println("┤")
}

// PrintPuzzle prints the carved grid followed by its solution.
func PrintPuzzle(p *types.Puzzle) {
	fmt.Printf("Puzzle (%s, %d givens):\n", p.Difficulty, p.Grid.CountFilled())
	NewVisualizer(p.Grid).Print()
	fmt.Println("Solution:")
	NewVisualizer(p.Solution).Print()
}
