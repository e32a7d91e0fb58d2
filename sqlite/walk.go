package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.WalkService = (*WalkService)(nil)

// WalkService implements hostwalk.WalkService using SQLite.
type WalkService struct {
	db *DB
}

// NewWalkService creates a new WalkService.
func NewWalkService(db *DB) *WalkService {
	return &WalkService{db: db}
}

// CreateWalk stores a new walk record.
func (s *WalkService) CreateWalk(ctx context.Context, rec *hostwalk.WalkRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO walks (id, start_url, strategy, visited, failed, robots_skipped, fingerprint, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.StartURL, string(rec.Strategy), rec.Visited, rec.Failed, rec.RobotsSkipped,
		rec.Fingerprint, rec.Duration.Milliseconds(), rec.StartedAt.Format(time.RFC3339))

	return err
}

// FindWalkByID retrieves a walk record by ID.
func (s *WalkService) FindWalkByID(ctx context.Context, id string) (*hostwalk.WalkRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, start_url, strategy, visited, failed, robots_skipped, fingerprint, duration_ms, started_at
		FROM walks
		WHERE id = ?
	`, id)

	rec, err := scanWalk(row.Scan)
	if err == sql.ErrNoRows {
		return nil, hostwalk.Errorf(hostwalk.ENOTFOUND, "walk not found")
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindWalks retrieves walk records matching the filter, most recent first.
func (s *WalkService) FindWalks(ctx context.Context, filter hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, start_url, strategy, visited, failed, robots_skipped, fingerprint, duration_ms, started_at FROM walks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StartURL != nil {
		query.WriteString(" AND start_url = ?")
		args = append(args, *filter.StartURL)
	}

	query.WriteString(" ORDER BY started_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*hostwalk.WalkRecord
	for rows.Next() {
		rec, err := scanWalk(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteWalk permanently removes a walk record.
func (s *WalkService) DeleteWalk(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM walks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return hostwalk.Errorf(hostwalk.ENOTFOUND, "walk not found")
	}

	return nil
}

// scanWalk reads one walks row using the given Scan function, which lets
// the single-row and multi-row paths share the column mapping.
func scanWalk(scan func(dest ...any) error) (*hostwalk.WalkRecord, error) {
	var rec hostwalk.WalkRecord
	var strategy, startedAt string
	var durationMS int64

	if err := scan(&rec.ID, &rec.StartURL, &strategy, &rec.Visited, &rec.Failed,
		&rec.RobotsSkipped, &rec.Fingerprint, &durationMS, &startedAt); err != nil {
		return nil, err
	}

	rec.Strategy = hostwalk.Strategy(strategy)
	rec.Duration = time.Duration(durationMS) * time.Millisecond

	var parseErr error
	rec.StartedAt, parseErr = time.Parse(time.RFC3339, startedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", parseErr)
	}

	return &rec, nil
}
