package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// lodgingLockID keys the transaction-scoped advisory lock that serializes
// admissions against the single shared lodging facility, which has no row
// of its own to lock.
const lodgingLockID int64 = 740031

type ReservationRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewReservationRepo(db *dbpg.DB, lockTimeout time.Duration) *ReservationRepository {
	return &ReservationRepository{
		db:          db,
		strategy:    defaultStrategy(),
		lockTimeout: lockTimeout,
	}
}

func lockLodging(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lodgingLockID); err != nil {
		return fmt.Errorf("lock lodging: %w", mapPgErr(err))
	}
	return nil
}

// overlapQuery counts approved reservations intersecting the inclusive
// [start, end] interval: NOT (existing.end < start OR existing.start > end).
// excludeID is empty everywhere except Approve, where the record must not
// conflict with itself; the text cast keeps the empty string bindable
// against the uuid column.
const overlapQuery = `SELECT COUNT(*) FROM reservations
              WHERE status = $1
                AND ($4 = '' OR id::text <> $4)
                AND NOT (date_end < $2 OR date_start > $3)`

// Create inserts a pending reservation. The overlap check against approved
// intervals and the insert run in one transaction holding the lodging lock.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return err
	}

	if err = lockLodging(ctx, tx); err != nil {
		return err
	}

	// An identical active request from the same user is resubmission, not a
	// conflict; it must be reported before any overlap outcome.
	dupQuery := `SELECT COUNT(*) FROM reservations
              WHERE user_id = $1 AND date_start = $2 AND date_end = $3 AND status = ANY($4)`
	var duplicates int
	if err = tx.QueryRowContext(
		ctx, dupQuery, res.UserID, res.DateStart, res.DateEnd,
		pq.Array(domain.ActiveStatuses),
	).Scan(&duplicates); err != nil {
		return fmt.Errorf("count duplicates: %w", err)
	}

	if duplicates > 0 {
		return domain.ErrAlreadyRequested
	}

	var conflicts int
	if err = tx.QueryRowContext(
		ctx, overlapQuery,
		domain.AdmissionStatusApproved, res.DateStart, res.DateEnd, "",
	).Scan(&conflicts); err != nil {
		return fmt.Errorf("count conflicts: %w", err)
	}

	if conflicts > 0 {
		return fmt.Errorf("%w: dates conflict with an approved reservation", domain.ErrCapacityExceeded)
	}

	query := `INSERT INTO reservations (id, user_id, form_data, date_start, date_end, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.UserID, res.FormData,
		res.DateStart, res.DateEnd, res.Status, res.CreatedAt, res.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert reservation: %w", mapPgErr(err))
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, user_id, form_data, date_start, date_end, status, COALESCE(rejection_reason, ''), created_at, updated_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(
		&res.ID, &res.UserID, &res.FormData, &res.DateStart, &res.DateEnd,
		&res.Status, &res.RejectionReason, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

// HasConflict is the read-only availability check used before the form is
// offered; the authoritative check runs inside Create/Approve.
func (r *ReservationRepository) HasConflict(ctx context.Context, start, end time.Time, excludeID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, overlapQuery,
		domain.AdmissionStatusApproved, start, end, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}

	var conflicts int
	if err = row.Scan(&conflicts); err != nil {
		return false, fmt.Errorf("scan conflict count: %w", err)
	}

	return conflicts > 0, nil
}

// Approve moves a pending reservation to approved. The interval is
// re-validated under the lodging lock: another reservation may have been
// approved for an overlapping window since this one was created.
func (r *ReservationRepository) Approve(ctx context.Context, id string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	if err = lockLodging(ctx, tx); err != nil {
		return nil, err
	}

	var res domain.Reservation
	res.ID = id
	rowQuery := `SELECT user_id, form_data, date_start, date_end, status, created_at
				 FROM reservations
				 WHERE id = $1
				 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, rowQuery, id).Scan(
		&res.UserID, &res.FormData, &res.DateStart, &res.DateEnd, &res.Status, &res.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", mapPgErr(err))
	}

	if res.Status != domain.AdmissionStatusPending {
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, res.Status)
	}

	var conflicts int
	if err = tx.QueryRowContext(
		ctx, overlapQuery,
		domain.AdmissionStatusApproved, res.DateStart, res.DateEnd, id,
	).Scan(&conflicts); err != nil {
		return nil, fmt.Errorf("count conflicts: %w", err)
	}

	if conflicts > 0 {
		return nil, fmt.Errorf("%w: dates conflict with an approved reservation", domain.ErrCapacityExceeded)
	}

	if err = tx.QueryRowContext(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		id, domain.AdmissionStatusApproved,
	).Scan(&res.UpdatedAt); err != nil {
		return nil, fmt.Errorf("approve reservation: %w", err)
	}
	res.Status = domain.AdmissionStatusApproved

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &res, nil
}

// Reject moves a pending reservation to rejected.
func (r *ReservationRepository) Reject(ctx context.Context, id, reason string) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, rejection_reason = $3, updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING user_id, form_data, date_start, date_end, created_at, updated_at`

	var res domain.Reservation
	res.ID = id
	res.Status = domain.AdmissionStatusRejected
	res.RejectionReason = reason
	err := r.db.Master.QueryRowContext(
		ctx, query, id,
		domain.AdmissionStatusRejected, reason, domain.AdmissionStatusPending,
	).Scan(&res.UserID, &res.FormData, &res.DateStart, &res.DateEnd, &res.CreatedAt, &res.UpdatedAt)
	if err == nil {
		return &res, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reject reservation: %w", err)
	}

	var status domain.AdmissionStatus
	checkErr := r.db.Master.QueryRowContext(ctx,
		`SELECT status FROM reservations WHERE id = $1`, id,
	).Scan(&status)
	if checkErr != nil {
		return nil, domain.ErrReservationNotFound
	}
	return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidState, status)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT id, user_id, form_data, date_start, date_end, status, COALESCE(rejection_reason, ''), created_at, updated_at
              FROM reservations
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	var list []*domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err = rows.Scan(
			&res.ID, &res.UserID, &res.FormData, &res.DateStart, &res.DateEnd,
			&res.Status, &res.RejectionReason, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}

	return list, rows.Err()
}
