package repositories

import "context"

// Repo stores registered repositories.
type Repo interface {
	Create(ctx context.Context, repo Repository) error
	GetByID(ctx context.Context, repositoryID string) (Repository, error)
	List(ctx context.Context) ([]Repository, error)
	Update(ctx context.Context, repo Repository) error
	UpdateStatus(ctx context.Context, repositoryID, status string) error
	Delete(ctx context.Context, repositoryID string) error
}
