package solver

import (
	"testing"

	"sudoku_core_go/internal/types"
)

// A classic, solvable Sudoku (0 = empty).
var sample = types.Board{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolved = types.Board{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolveClassicBoard(t *testing.T) {
	in := sample
	out, err := Solve(in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out != sampleSolved {
		t.Fatalf("wrong solution:\n got %v\nwant %v", out, sampleSolved)
	}
	if out[0] != [9]int{5, 3, 4, 6, 7, 8, 9, 1, 2} {
		t.Fatalf("wrong first row: %v", out[0])
	}
	if in != sample {
		t.Fatal("Solve mutated its input board")
	}
	if !IsBoardComplete(&out) {
		t.Fatal("solved board reported incomplete")
	}
	if conf := Conflicts(&out); len(conf) != 0 {
		t.Fatalf("solved board has conflicts: %v", conf)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	// Cell (0,3) needs a 4 but the 4 at (1,4) sits in the same block.
	b := types.Board{
		{1, 2, 3, 0, 5, 6, 7, 8, 9},
		{0, 0, 0, 0, 4, 0, 0, 0, 0},
	}
	if _, err := Solve(b); err != ErrUnsolvable {
		t.Fatalf("expected ErrUnsolvable, got %v", err)
	}
}

func TestCountSolutions(t *testing.T) {
	cases := []struct {
		name  string
		board types.Board
		limit int
		want  int
	}{
		{"classic is unique", sample, 3, 1},
		{"solved counts itself", sampleSolved, 2, 1},
		{"empty board hits the limit", types.Board{}, 2, 2},
		{"zero limit counts nothing", sample, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountSolutions(tc.board, tc.limit); got != tc.want {
				t.Fatalf("CountSolutions(limit=%d) = %d, want %d", tc.limit, got, tc.want)
			}
		})
	}
}

func TestHasUniqueSolution(t *testing.T) {
	if !HasUniqueSolution(sample) {
		t.Fatal("classic board should have a unique solution")
	}
	if HasUniqueSolution(types.Board{}) {
		t.Fatal("empty board should not be unique")
	}
	unsolvable := types.Board{
		{1, 2, 3, 0, 5, 6, 7, 8, 9},
		{0, 0, 0, 0, 4, 0, 0, 0, 0},
	}
	if HasUniqueSolution(unsolvable) {
		t.Fatal("unsolvable board should not be unique")
	}
}

func TestIsValidPlacement(t *testing.T) {
	b := sample
	cases := []struct {
		name  string
		row   int
		col   int
		value int
		want  bool
	}{
		{"duplicate in row rejected", 0, 2, 5, false},
		{"duplicate in column rejected", 2, 0, 8, false},
		{"duplicate in block rejected", 1, 1, 9, false},
		{"free value accepted", 0, 2, 4, true},
		{"zero always accepted", 0, 2, 0, true},
		{"filled cell consistent with itself", 0, 0, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPlacement(&b, tc.row, tc.col, tc.value); got != tc.want {
				t.Fatalf("IsValidPlacement(%d,%d,%d) = %v, want %v",
					tc.row, tc.col, tc.value, got, tc.want)
			}
		})
	}
}

func TestIsBoardComplete(t *testing.T) {
	if IsBoardComplete(&sample) {
		t.Fatal("partial board reported complete")
	}
	solved := sampleSolved
	if !IsBoardComplete(&solved) {
		t.Fatal("solved board reported incomplete")
	}
	// Full but self-inconsistent: duplicate 3 in the first row.
	broken := sampleSolved
	broken[0][0] = 3
	if IsBoardComplete(&broken) {
		t.Fatal("board with a row duplicate reported complete")
	}
}

func TestConflicts(t *testing.T) {
	var b types.Board
	if conf := Conflicts(&b); len(conf) != 0 {
		t.Fatalf("all-zero board has conflicts: %v", conf)
	}

	// Two 7s in the same row: both cells must be reported.
	b[4][1] = 7
	b[4][6] = 7
	conf := Conflicts(&b)
	want := []types.Position{{Row: 4, Col: 1}, {Row: 4, Col: 6}}
	if len(conf) != len(want) || conf[0] != want[0] || conf[1] != want[1] {
		t.Fatalf("Conflicts = %v, want %v", conf, want)
	}
}
