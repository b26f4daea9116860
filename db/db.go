package db

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/random"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"sudoku_core_go/internal/types"
)

// PuzzleData is the JSON payload stored inside the sudoku field of a record.
type PuzzleData struct {
	Grid     types.Board     `json:"grid"`
	Solution types.Board     `json:"solution"`
	Givens   types.GivenMask `json:"givens"`
}

// PuzzleRecord represents a record in the PocketBase database
type PuzzleRecord struct {
	ID         string     `json:"id"`
	Puzzle     PuzzleData `json:"sudoku"`
	Difficulty string     `json:"difficulty"`
	GivenCount int        `json:"givenCount"`
	Created    string     `json:"created"`
	Updated    string     `json:"updated"`
}

var client *pocketbase.Client

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Warning: No .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		url = "https://base.mljr.eu"
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	// Create client with superuser authentication
	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))

	// Attempt initial authorization
	if err := client.Authorize(); err != nil {
		fmt.Printf("⚠️ Initial authorization failed: %v\n", err)
	}
}

// Authenticate tries to authenticate with PocketBase
func Authenticate() error {
	err := client.Authorize()
	if err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	// Start the re-authentication timer
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				fmt.Printf("⚠️ Re-authentication failed: %v\n", err)
			} else {
				fmt.Println("🔄 Successfully re-authenticated with PocketBase")
			}
		}
	}()
	return nil
}

// NewRecordID returns a fresh 6-character record ID. The sudokus
// collection caps IDs at 6 characters.
func NewRecordID() string {
	return random.RandString(6)
}

// UploadPuzzle stores a generated puzzle under a fresh record ID and
// returns the created record.
func UploadPuzzle(p *types.Puzzle) (*pocketbase.ResponseCreate, error) {
	id := NewRecordID()

	exists, err := PuzzleExists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check if puzzle exists: %v", err)
	}
	if exists {
		return nil, fmt.Errorf("puzzle with ID %s already exists", id)
	}

	puzzleJSON, err := json.Marshal(PuzzleData{
		Grid:     p.Grid,
		Solution: p.Solution,
		Givens:   p.Givens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal puzzle data: %v", err)
	}

	data := map[string]any{
		"id":         id,
		"sudoku":     string(puzzleJSON),
		"difficulty": string(p.Difficulty),
		"givenCount": p.Grid.CountFilled(),
	}

	record, err := client.Create("sudokus", data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload puzzle: %v", err)
	}
	return &record, nil
}

// GetPuzzle loads a stored puzzle by record ID.
func GetPuzzle(id string) (*types.Puzzle, error) {
	record, err := client.One("sudokus", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %v", id, err)
	}

	var data PuzzleData
	if err := json.Unmarshal([]byte(record["sudoku"].(string)), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle data: %v", err)
	}

	diff, err := types.ParseDifficulty(fmt.Sprintf("%v", record["difficulty"]))
	if err != nil {
		diff = types.Medium
	}

	return types.NewPuzzle(data.Grid, data.Solution, diff), nil
}

// ListPuzzles pages through stored puzzles, optionally filtered by difficulty.
func ListPuzzles(page, perPage int, difficulty types.Difficulty, sortField, sortOrder string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string

	if difficulty != "" {
		filterRules = append(filterRules, fmt.Sprintf("difficulty = \"%s\"", difficulty))
	}

	sort := sortField
	if sortOrder == "desc" {
		sort = "-" + sortField
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    sort,
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := client.List("sudokus", params)
	return &result, err
}

// PuzzleExists reports whether a record with the given ID is already stored.
func PuzzleExists(id string) (bool, error) {
	_, err := client.One("sudokus", id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
