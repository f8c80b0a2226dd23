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

type EnrollmentRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewEnrollmentRepo(db *dbpg.DB, lockTimeout time.Duration) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:          db,
		strategy:    defaultStrategy(),
		lockTimeout: lockTimeout,
	}
}

// Create inserts a pending enrollment. The seat check and the insert run in
// one transaction holding the course row lock, so two concurrent requests
// for the last seat cannot both pass the count.
func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return err
	}

	spotQuery := `SELECT max_capacity, status FROM courses WHERE id = $1 FOR UPDATE`
	var maxCapacity int
	var status domain.CourseStatus
	if err = tx.QueryRowContext(ctx, spotQuery, e.CourseID).Scan(&maxCapacity, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("lock course: %w", mapPgErr(err))
	}

	if status != domain.CourseStatusOpen {
		return fmt.Errorf("%w: course is %s", domain.ErrInvalidState, status)
	}

	// A requester resubmitting while their record is still active must get
	// AlreadyRequested, not CapacityExceeded, even when their own record is
	// what fills the course.
	dupQuery := `SELECT COUNT(*) FROM enrollments
              WHERE course_id = $1 AND user_id = $2 AND status = ANY($3)`
	var duplicates int
	if err = tx.QueryRowContext(
		ctx, dupQuery, e.CourseID, e.UserID,
		pq.Array(domain.ActiveStatuses),
	).Scan(&duplicates); err != nil {
		return fmt.Errorf("count duplicates: %w", err)
	}

	if duplicates > 0 {
		return domain.ErrAlreadyRequested
	}

	activeQuery := `SELECT COUNT(*) FROM enrollments
              WHERE course_id = $1 AND status = ANY($2)`
	var active int
	if err = tx.QueryRowContext(
		ctx, activeQuery, e.CourseID,
		pq.Array(domain.ActiveStatuses),
	).Scan(&active); err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}

	if active >= maxCapacity {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO enrollments (id, course_id, user_id, form_data, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, e.ID, e.CourseID,
		e.UserID, e.FormData, e.Status, e.CreatedAt, e.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert enrollment: %w", mapPgErr(err))
	}

	return tx.Commit()
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	query := `SELECT id, course_id, user_id, form_data, status, COALESCE(rejection_reason, ''), created_at, updated_at
			  FROM enrollments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var e domain.Enrollment
	if err = row.Scan(
		&e.ID, &e.CourseID, &e.UserID, &e.FormData,
		&e.Status, &e.RejectionReason, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &e, nil
}

// Approve moves a pending enrollment to approved. The seat count is
// re-validated under the course row lock: capacity may have shrunk since
// the record was created, and approving must not double-book.
func (r *EnrollmentRepository) Approve(ctx context.Context, id string) (*domain.Enrollment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	var e domain.Enrollment
	e.ID = id
	rowQuery := `SELECT course_id, user_id, form_data, status, created_at
				 FROM enrollments
				 WHERE id = $1
				 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, rowQuery, id).Scan(
		&e.CourseID, &e.UserID, &e.FormData, &e.Status, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("lock enrollment: %w", mapPgErr(err))
	}

	if e.Status != domain.AdmissionStatusPending {
		return nil, fmt.Errorf("%w: enrollment is %s", domain.ErrInvalidState, e.Status)
	}

	var maxCapacity int
	if err = tx.QueryRowContext(ctx,
		`SELECT max_capacity FROM courses WHERE id = $1 FOR UPDATE`, e.CourseID,
	).Scan(&maxCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("lock course: %w", mapPgErr(err))
	}

	// The pending record itself is part of the active count.
	var active int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = ANY($2)`,
		e.CourseID, pq.Array(domain.ActiveStatuses),
	).Scan(&active); err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	if active > maxCapacity {
		return nil, domain.ErrCapacityExceeded
	}

	if err = tx.QueryRowContext(ctx,
		`UPDATE enrollments SET status = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		id, domain.AdmissionStatusApproved,
	).Scan(&e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("approve enrollment: %w", err)
	}
	e.Status = domain.AdmissionStatusApproved

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &e, nil
}

// Reject moves a pending enrollment to rejected. The status guard in the
// UPDATE keeps approved/rejected records terminal.
func (r *EnrollmentRepository) Reject(ctx context.Context, id, reason string) (*domain.Enrollment, error) {
	query := `UPDATE enrollments
			  SET status = $2, rejection_reason = $3, updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING course_id, user_id, form_data, created_at, updated_at`

	var e domain.Enrollment
	e.ID = id
	e.Status = domain.AdmissionStatusRejected
	e.RejectionReason = reason
	err := r.db.Master.QueryRowContext(
		ctx, query, id,
		domain.AdmissionStatusRejected, reason, domain.AdmissionStatusPending,
	).Scan(&e.CourseID, &e.UserID, &e.FormData, &e.CreatedAt, &e.UpdatedAt)
	if err == nil {
		return &e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reject enrollment: %w", err)
	}

	// Nothing updated: record missing or no longer pending.
	var status domain.AdmissionStatus
	checkErr := r.db.Master.QueryRowContext(ctx,
		`SELECT status FROM enrollments WHERE id = $1`, id,
	).Scan(&status)
	if checkErr != nil {
		return nil, domain.ErrEnrollmentNotFound
	}
	return nil, fmt.Errorf("%w: enrollment is %s", domain.ErrInvalidState, status)
}

func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]*domain.Enrollment, error) {
	query := `SELECT id, course_id, user_id, form_data, status, COALESCE(rejection_reason, ''), created_at, updated_at
              FROM enrollments
              WHERE course_id = $1 AND status = ANY($2)
              ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courseID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list enrollments by course: %w", err)
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	query := `SELECT id, course_id, user_id, form_data, status, COALESCE(rejection_reason, ''), created_at, updated_at
              FROM enrollments
              WHERE user_id = $1
              ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by user: %w", err)
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

func scanEnrollments(rows *sql.Rows) ([]*domain.Enrollment, error) {
	var res []*domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(
			&e.ID, &e.CourseID, &e.UserID, &e.FormData,
			&e.Status, &e.RejectionReason, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
