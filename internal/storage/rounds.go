package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundRecord is the result of one finished round.
type RoundRecord struct {
	ID        uuid.UUID
	GameID    string
	Outcome   string // "victory" or "game_over"
	Score     int
	Lives     int
	Ticks     int
	Seed      int64
	CreatedAt time.Time
}

// SaveRound records a finished round. A zero ID is replaced by a new
// random UUID. Returns the stored ID.
func (s *Store) SaveRound(rec RoundRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, game_id, outcome, score, lives, ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.GameID, rec.Outcome, rec.Score, rec.Lives, rec.Ticks, rec.Seed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return rec.ID, nil
}

// RecentRounds returns the most recent rounds for a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, lives, ticks, seed, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var id string
		var createdAt any
		if err := rows.Scan(&id, &rec.GameID, &rec.Outcome, &rec.Score, &rec.Lives,
			&rec.Ticks, &rec.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad round id %q: %w", id, err)
		}
		rec.ID = parsed
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// OutcomeCounts returns how many rounds of a game ended with each outcome.
func (s *Store) OutcomeCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*) FROM rounds WHERE game_id = ? GROUP BY outcome`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan outcome count: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}
