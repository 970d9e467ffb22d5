package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmapath/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// timestamps from the database RETURNING clause. Company is stored as NULL
// when blank.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, company, service, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 RETURNING id, created_at, updated_at`,
		sub.Name, sub.Email, sub.Company, sub.Service, sub.Message,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// List returns contact submissions newest first, paginated by limit/offset.
func (r *PgContactRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(company, ''), service, message, created_at, updated_at
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Service, &s.Message, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
