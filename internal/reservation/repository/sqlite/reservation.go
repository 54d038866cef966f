package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reservation-agent/internal/reservation"
	repo "reservation-agent/internal/reservation/repository"
)

const selectColumns = `id, user_id, date, time, purpose, status, created_at, updated_at`

// Create inserts a reservation unless the user already holds one.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (reservation.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Create"), err)
		return reservation.Reservation{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	var existingDate, existingTime string
	err = tx.QueryRowContext(ctx,
		`SELECT date, time FROM reservations WHERE user_id = ? LIMIT 1`, opt.UserID,
	).Scan(&existingDate, &existingTime)
	switch {
	case err == nil:
		return reservation.Reservation{}, &reservation.ConflictError{
			Message: reservation.DefaultConflictMessage,
			Details: fmt.Sprintf("날짜: %s, 시간: %s", existingDate, existingTime),
		}
	case err != sql.ErrNoRows:
		r.l.Errorf(ctx, "%s lookup: %v", r.dsn("Create"), err)
		return reservation.Reservation{}, repo.ErrFailedToInsert
	}

	now := r.now().UTC()
	res := reservation.Reservation{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Date:      opt.Date,
		Time:      opt.Time,
		Purpose:   opt.Purpose,
		Status:    reservation.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO reservations (id, user_id, date, time, purpose, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stamp := now.Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx, query,
		res.ID, res.UserID, res.Date, res.Time, res.Purpose, res.Status, stamp, stamp,
	); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("Create"), err)
		return reservation.Reservation{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Create"), err)
		return reservation.Reservation{}, repo.ErrFailedToInsert
	}
	return res, nil
}

// ListByUser returns the user's reservations, oldest first.
func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	query := `SELECT ` + selectColumns + ` FROM reservations WHERE user_id = ? ORDER BY date, time`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByUser"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []reservation.Reservation
	for rows.Next() {
		var (
			res                  reservation.Reservation
			createdAt, updatedAt string
		)
		if err := rows.Scan(&res.ID, &res.UserID, &res.Date, &res.Time, &res.Purpose, &res.Status, &createdAt, &updatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListByUser"), err)
			return nil, repo.ErrFailedToList
		}
		res.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		res.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListByUser"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// DeleteByUser removes every reservation of the user. Deleting nothing is not an error.
func (r *implRepository) DeleteByUser(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE user_id = ?`, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByUser"), err)
		return repo.ErrFailedToDelete
	}
	if n, err := result.RowsAffected(); err == nil {
		r.l.Debugf(ctx, "%s: user=%s removed=%d", r.dsn("DeleteByUser"), userID, n)
	}
	return nil
}
