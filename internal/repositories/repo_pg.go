package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new repository.
func (r *PGRepo) Create(ctx context.Context, repo Repository) error {
	const query = `
INSERT INTO repositories (id, url, name, description, analysis_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		repo.ID,
		repo.URL,
		repo.Name,
		repo.Description,
		repo.Status,
		repo.CreatedAt,
		repo.UpdatedAt,
	)
	return err
}

// GetByID returns a repository by ID.
func (r *PGRepo) GetByID(ctx context.Context, repositoryID string) (Repository, error) {
	const query = `
SELECT id, url, name, description, analysis_status, created_at, updated_at
FROM repositories
WHERE id = $1
LIMIT 1`
	var repo Repository
	var description sql.NullString
	err := r.DB.QueryRowContext(ctx, query, repositoryID).Scan(
		&repo.ID,
		&repo.URL,
		&repo.Name,
		&description,
		&repo.Status,
		&repo.CreatedAt,
		&repo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Repository{}, ErrNotFound
		}
		return Repository{}, err
	}
	if description.Valid {
		repo.Description = description.String
	}
	return repo, nil
}

// List returns all repositories ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Repository, error) {
	const query = `
SELECT id, url, name, description, analysis_status, created_at, updated_at
FROM repositories
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Repository{}
	for rows.Next() {
		var repo Repository
		var description sql.NullString
		if err := rows.Scan(
			&repo.ID,
			&repo.URL,
			&repo.Name,
			&description,
			&repo.Status,
			&repo.CreatedAt,
			&repo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if description.Valid {
			repo.Description = description.String
		}
		out = append(out, repo)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a repository.
func (r *PGRepo) Update(ctx context.Context, repo Repository) error {
	const query = `
UPDATE repositories
SET url = $1,
    name = $2,
    description = $3,
    updated_at = now()
WHERE id = $4`

	res, err := r.DB.ExecContext(ctx, query, repo.URL, repo.Name, repo.Description, repo.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus transitions the analysis status.
func (r *PGRepo) UpdateStatus(ctx context.Context, repositoryID, status string) error {
	const query = `
UPDATE repositories
SET analysis_status = $1,
    updated_at = now()
WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, repositoryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a repository. Analyses rows cascade via the FK.
func (r *PGRepo) Delete(ctx context.Context, repositoryID string) error {
	const query = `DELETE FROM repositories WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, repositoryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
