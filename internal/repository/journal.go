package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const defaultListLimit = 100

// JournalRepository stores the local check-in audit trail. Attendance state
// itself lives in the membership API; this is a log, never read back into
// any attendance decision.
type JournalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewJournalRepo(db *dbpg.DB) *JournalRepository {
	return &JournalRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *JournalRepository) Record(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO checkin_journal
			  (id, event_id, operator_id, identifier, registration_id, member_name, outcome, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	// A duplicate id is final, so it stops the retries.
	var dupErr error
	err := retry.DoContext(ctx, r.strategy, func() error {
		_, err := r.db.ExecContext(ctx, query,
			e.ID, e.EventID, e.OperatorID, e.Identifier,
			e.RegistrationID, e.MemberName, e.Outcome, e.Reason, e.CreatedAt,
		)
		if isUniqueViolation(err) {
			dupErr = err
			return nil
		}
		return err
	})
	if dupErr != nil {
		return fmt.Errorf("journal entry %s already exists: %w", e.ID, dupErr)
	}
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ListByEvent returns the newest entries first.
func (r *JournalRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, event_id, operator_id, identifier, registration_id, member_name, outcome, reason, created_at
			  FROM checkin_journal
			  WHERE event_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.JournalEntry, 0)
	for rows.Next() {
		var e domain.JournalEntry
		if err = rows.Scan(
			&e.ID, &e.EventID, &e.OperatorID, &e.Identifier,
			&e.RegistrationID, &e.MemberName, &e.Outcome, &e.Reason, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		res = append(res, &e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return res, nil
}

func (r *JournalRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM checkin_journal WHERE created_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}
