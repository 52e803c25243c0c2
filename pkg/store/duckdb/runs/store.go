package runs

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/store-briefing/pkg/models/store"
)

const deliveredStatus = "delivered"

// Store records every unit run so that a slot already delivered is not sent twice.
type Store interface {
	Record(ctx context.Context, run store.Run) error
	Delivered(ctx context.Context, unit string, slot time.Time) (bool, error)
	List(ctx context.Context, filter store.RunFilter) ([]store.Run, error)
}

type runStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &runStore{db: db}, nil
}

func (s *runStore) Record(ctx context.Context, run store.Run) error {
	if run.ID == "" {
		return fmt.Errorf("run id is required")
	}
	query := `
		INSERT INTO briefing_runs (id, unit, slot, status, reason, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.Unit,
		run.Slot.UTC(),
		run.Status,
		run.Reason,
		run.StartedAt.UTC(),
		run.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *runStore) Delivered(ctx context.Context, unit string, slot time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM briefing_runs WHERE unit = ? AND slot = ? AND status = ?`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, unit, slot.UTC(), deliveredStatus).Scan(&count); err != nil {
		return false, fmt.Errorf("query delivered runs: %w", err)
	}
	return count > 0, nil
}

func (s *runStore) List(ctx context.Context, filter store.RunFilter) ([]store.Run, error) {
	var (
		conditions []string
		args       []any
	)
	if len(filter.Units) > 0 {
		placeholders := make([]string, 0, len(filter.Units))
		for _, u := range filter.Units {
			placeholders = append(placeholders, "?")
			args = append(args, u)
		}
		conditions = append(conditions, fmt.Sprintf("unit IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}

	query := `SELECT id, unit, slot, status, reason, started_at, finished_at FROM briefing_runs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY started_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]store.Run, 0)
	for rows.Next() {
		var (
			run    store.Run
			reason sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Unit, &run.Slot, &run.Status, &reason, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if reason.Valid {
			r := reason.String
			run.Reason = &r
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
