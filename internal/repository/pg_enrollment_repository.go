package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmapath/backend/internal/model"
)

// EnrollmentRepository defines the persistence interface for enrollment
// submissions. Insert-only, like ContactRepository.
type EnrollmentRepository interface {
	Save(ctx context.Context, sub *model.EnrollmentSubmission) error
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.EnrollmentSubmission, error)
}

// PgEnrollmentRepository is the PostgreSQL implementation of EnrollmentRepository.
type PgEnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgEnrollmentRepository creates a PgEnrollmentRepository backed by the given pool.
func NewPgEnrollmentRepository(pool *pgxpool.Pool) *PgEnrollmentRepository {
	return &PgEnrollmentRepository{pool: pool}
}

var _ EnrollmentRepository = (*PgEnrollmentRepository)(nil)

// Save inserts a new enrollment_submissions row. Interests map to a text[]
// column; the inserted id and timestamps are written back into sub.
func (r *PgEnrollmentRepository) Save(ctx context.Context, sub *model.EnrollmentSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO enrollment_submissions
		   (full_name, email, phone, organization, role, interests, start_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		 RETURNING id, created_at, updated_at`,
		sub.FullName, sub.Email, sub.Phone, sub.Organization, sub.Role,
		sub.Interests, sub.StartDate, sub.Notes,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// List returns enrollment submissions newest first, paginated by limit/offset.
func (r *PgEnrollmentRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.EnrollmentSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, phone, organization, role, interests,
		        start_date, COALESCE(notes, ''), created_at, updated_at
		 FROM enrollment_submissions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.EnrollmentSubmission
	for rows.Next() {
		var s model.EnrollmentSubmission
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.Organization,
			&s.Role, &s.Interests, &s.StartDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
