package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"sudoku_core_go/db"
	"sudoku_core_go/internal/generator"
	"sudoku_core_go/internal/solver"
	"sudoku_core_go/internal/types"
	"sudoku_core_go/internal/visualizer"
)

func main() {
	count := flag.Int("count", 2, "puzzles to generate per difficulty")
	diffFlag := flag.String("difficulty", "", "easy|medium|hard (empty = all)")
	seed := flag.Int64("seed", 0, "fixed random seed (0 = time-based)")
	outDir := flag.String("out", ".", "directory for JSON snapshots")
	upload := flag.Bool("upload", false, "upload generated puzzles to PocketBase")
	flag.Parse()

	difficulties := []types.Difficulty{types.Easy, types.Medium, types.Hard}
	if *diffFlag != "" {
		d, err := types.ParseDifficulty(*diffFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		difficulties = []types.Difficulty{d}
	}

	if *upload {
		if err := db.Authenticate(); err != nil {
			fmt.Printf("Error authenticating with PocketBase: %v\n", err)
			os.Exit(1)
		}
	}

	for _, d := range difficulties {
		fmt.Printf("\nGenerating %d %s puzzle(s) (target %d givens)\n",
			*count, d, d.TargetGivens())

		start := time.Now()
		puzzles := generateBatch(d, *count, *seed)
		fmt.Printf("Generation time: %v\n", time.Since(start))

		for i, p := range puzzles {
			visualizer.PrintPuzzle(p)

			// Verify the pair before handing it anywhere
			if !verifyPuzzle(p) {
				fmt.Println("Warning: invalid puzzle generated!")
				continue
			}

			jsonData, err := p.ToJSON()
			if err != nil {
				fmt.Printf("Error serializing to JSON: %v\n", err)
				continue
			}

			filename := filepath.Join(*outDir, fmt.Sprintf("sudoku_%s_%d.json", d, i))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				fmt.Printf("Error writing to file: %v\n", err)
			}

			if *upload {
				record, err := db.UploadPuzzle(p)
				if err != nil {
					fmt.Printf("Error uploading puzzle: %v\n", err)
				} else {
					fmt.Printf("Uploaded puzzle as record %s\n", record.ID)
				}
			}
		}
	}
}

// generateBatch generates count puzzles concurrently. Each worker owns
// its generator, grid and random source, so no locking is needed.
func generateBatch(d types.Difficulty, count int, seed int64) []*types.Puzzle {
	workerCount := int(math.Min(float64(count), float64(runtime.NumCPU())))
	jobs := make(chan int)
	results := make(chan *types.Puzzle, count)
	var wg sync.WaitGroup

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			gen := generator.NewClassicGenerator(d)
			if seed != 0 {
				gen.SetSeed(seed + int64(workerID))
			}
			for range jobs {
				results <- gen.Generate()
			}
		}(w)
	}

	go func() {
		for i := 0; i < count; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	puzzles := make([]*types.Puzzle, 0, count)
	for p := range results {
		puzzles = append(puzzles, p)
	}
	return puzzles
}

// verifyPuzzle re-checks the generator's guarantees: a complete,
// conflict-free solution and a puzzle that solves uniquely back to it.
func verifyPuzzle(p *types.Puzzle) bool {
	if !solver.IsBoardComplete(&p.Solution) {
		return false
	}
	if len(solver.Conflicts(&p.Solution)) != 0 {
		return false
	}
	if !solver.HasUniqueSolution(p.Grid) {
		return false
	}
	solved, err := solver.Solve(p.Grid)
	return err == nil && solved == p.Solution
}
