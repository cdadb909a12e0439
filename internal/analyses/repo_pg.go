package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"vibe-backend/internal/insight"
)

// PGRepo implements Repo using Postgres. Tree and slice fields are stored as
// JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, repository_id, file_structure, technologies, patterns, recommendations, complexity_score, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, repository_id, file_structure, technologies, patterns, recommendations, complexity_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	structure, err := marshalTree(analysis.FileStructure)
	if err != nil {
		return err
	}
	technologies, err := marshalList(analysis.Technologies)
	if err != nil {
		return err
	}
	patterns, err := marshalList(analysis.Patterns)
	if err != nil {
		return err
	}
	recommendations, err := marshalList(analysis.Recommendations)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.RepositoryID,
		structure,
		technologies,
		patterns,
		recommendations,
		analysis.ComplexityScore,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// List returns all analyses ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

// ListByRepository returns the analyses for one repository, newest first.
func (r *PGRepo) ListByRepository(ctx context.Context, repositoryID string) ([]Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE repository_id = $1
ORDER BY created_at DESC`
	return r.queryMany(ctx, query, repositoryID)
}

// DeleteByRepository removes all analyses for a repository.
func (r *PGRepo) DeleteByRepository(ctx context.Context, repositoryID string) error {
	const query = `DELETE FROM analyses WHERE repository_id = $1`
	_, err := r.DB.ExecContext(ctx, query, repositoryID)
	return err
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]Analysis, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var structure, technologies, patterns, recommendations []byte
	if err := row.Scan(
		&a.ID,
		&a.RepositoryID,
		&structure,
		&technologies,
		&patterns,
		&recommendations,
		&a.ComplexityScore,
		&a.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}

	if err := json.Unmarshal(structure, &a.FileStructure); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(technologies, &a.Technologies); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(patterns, &a.Patterns); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func marshalTree(tree insight.Tree) ([]byte, error) {
	if tree == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(tree)
}

func marshalList(values []string) ([]byte, error) {
	if values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(values)
}

var _ Repo = (*PGRepo)(nil)
