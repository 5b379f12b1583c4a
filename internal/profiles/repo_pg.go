package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ProfilesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (id, name, age, bio, image_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		p.ID,
		p.Name,
		p.Age,
		p.Bio,
		p.ImageURL,
		p.CreatedAt,
	)
	return err
}

// GetByID fetches a profile by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	const query = `
SELECT id, name, age, bio, image_url, created_at
FROM profiles
WHERE id = $1
LIMIT 1`

	var p Profile
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Bio,
		&p.ImageURL,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

var _ ProfilesRepo = (*PGRepo)(nil)
