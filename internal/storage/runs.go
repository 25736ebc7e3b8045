package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// RunRecord is one finished run of a game.
type RunRecord struct {
	ID         int64
	RunID      string // Assigned by SaveRun when empty
	GameID     string
	Score      int
	Level      int    // Level reached
	Outcome    string // "win" or "loss"
	Ticks      int
	Seed       int64
	Difficulty string
	CreatedAt  time.Time
}

// FinishedRun builds the record for a run that ended in st.
func FinishedRun(gameID string, st core.GameState, seed int64, difficulty string) RunRecord {
	outcome := "loss"
	if st.Won {
		outcome = "win"
	}
	return RunRecord{
		GameID:     gameID,
		Score:      st.Score,
		Level:      st.Level,
		Outcome:    outcome,
		Ticks:      st.Tick,
		Seed:       seed,
		Difficulty: difficulty,
	}
}

// ErrRunNotFound is returned by RunByID for unknown run IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// SaveRun records a finished run. Runs with a positive score also get a
// scores entry, in the same transaction. Returns the run ID.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, game_id, score, level, outcome, ticks, seed, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.GameID, run.Score, run.Level, run.Outcome, run.Ticks, run.Seed, run.Difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if run.Score > 0 {
		if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", run.GameID, run.Score); err != nil {
			return "", fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.RunID, nil
}

const runColumns = `id, run_id, game_id, score, level, outcome, ticks, seed, difficulty, created_at`

// RunByID retrieves a run by its ID.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (*RunRecord, error) {
	var run RunRecord
	var createdAt any
	if err := r.Scan(
		&run.ID,
		&run.RunID,
		&run.GameID,
		&run.Score,
		&run.Level,
		&run.Outcome,
		&run.Ticks,
		&run.Seed,
		&run.Difficulty,
		&createdAt,
	); err != nil {
		return nil, err
	}
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}
