package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CourseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourseRepo(db *dbpg.DB) *CourseRepository {
	return &CourseRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, name, description, location, workload_hours, start_date, end_date, max_capacity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Description, c.Location, c.WorkloadHours,
		c.StartDate, c.EndDate, c.MaxCapacity, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT id, name, description, location, workload_hours, start_date, end_date, max_capacity, status, created_at, updated_at
			  FROM courses
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	var c domain.Course
	if err = row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Location, &c.WorkloadHours,
		&c.StartDate, &c.EndDate, &c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}

	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, name, description, location, workload_hours, start_date, end_date, max_capacity, status, created_at, updated_at
			  FROM courses
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Course
	for rows.Next() {
		var c domain.Course
		if err = rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Location, &c.WorkloadHours,
			&c.StartDate, &c.EndDate, &c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// GetDetails returns the course together with its remaining seats, counting
// pending and approved enrollments against max_capacity.
func (r *CourseRepository) GetDetails(ctx context.Context, courseID string) (*domain.CourseDetails, error) {
	query := `
		SELECT
            c.id, c.name, c.description, c.location, c.workload_hours,
            c.start_date, c.end_date, c.max_capacity, c.status,
            c.created_at, c.updated_at,
            c.max_capacity - COUNT(e.id) AS remaining_seats
        FROM courses c
        LEFT JOIN enrollments e
            ON e.course_id = c.id
            AND e.status = ANY($2)
        WHERE c.id = $1
        GROUP BY c.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, courseID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.CourseDetails
	err = row.Scan(
		&d.Course.ID, &d.Course.Name, &d.Course.Description, &d.Course.Location,
		&d.Course.WorkloadHours, &d.Course.StartDate, &d.Course.EndDate,
		&d.Course.MaxCapacity, &d.Course.Status,
		&d.Course.CreatedAt, &d.Course.UpdatedAt,
		&d.RemainingSeats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course details: %w", err)
	}

	return &d, nil
}

// CompleteFinished marks courses whose end date has passed as completed
// and returns them.
func (r *CourseRepository) CompleteFinished(ctx context.Context) ([]*domain.Course, error) {
	query := `
        UPDATE courses
        SET status = $2, updated_at = NOW()
        WHERE status = ANY($1)
          AND end_date < CURRENT_DATE
        RETURNING id, name, description, location, workload_hours,
                  start_date, end_date, max_capacity, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array([]domain.CourseStatus{domain.CourseStatusOpen, domain.CourseStatusClosed}),
		domain.CourseStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}
	defer rows.Close()

	var res []*domain.Course
	for rows.Next() {
		var c domain.Course
		if err = rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Location, &c.WorkloadHours,
			&c.StartDate, &c.EndDate, &c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &c)
	}

	return res, rows.Err()
}
