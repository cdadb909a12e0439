package analyses

import "context"

// Repo stores analysis results.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	List(ctx context.Context) ([]Analysis, error)
	ListByRepository(ctx context.Context, repositoryID string) ([]Analysis, error)
	DeleteByRepository(ctx context.Context, repositoryID string) error
}
