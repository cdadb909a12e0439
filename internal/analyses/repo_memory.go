package analyses

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu           sync.RWMutex
	byID         map[string]Analysis
	byRepository map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:         make(map[string]Analysis),
		byRepository: make(map[string][]string),
	}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	r.byRepository[analysis.RepositoryID] = append(r.byRepository[analysis.RepositoryID], analysis.ID)
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// List returns all analyses, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Analysis, 0, len(r.byID))
	for _, analysis := range r.byID {
		out = append(out, analysis)
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByRepository returns the analyses for one repository, newest first.
func (r *MemoryRepo) ListByRepository(ctx context.Context, repositoryID string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byRepository[repositoryID]
	out := make([]Analysis, 0, len(ids))
	for _, id := range ids {
		if analysis, ok := r.byID[id]; ok {
			out = append(out, analysis)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// DeleteByRepository removes all analyses for a repository.
func (r *MemoryRepo) DeleteByRepository(ctx context.Context, repositoryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.byRepository[repositoryID] {
		delete(r.byID, id)
	}
	delete(r.byRepository, repositoryID)
	return nil
}

func sortNewestFirst(analyses []Analysis) {
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
}

var _ Repo = (*MemoryRepo)(nil)
