package repositories

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores repositories in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Repository
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Repository)}
}

// Create stores the repository.
func (r *MemoryRepo) Create(ctx context.Context, repo Repository) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[repo.ID] = repo
	return nil
}

// GetByID returns a repository by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, repositoryID string) (Repository, error) {
	if err := ctx.Err(); err != nil {
		return Repository{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	repo, ok := r.byID[repositoryID]
	if !ok {
		return Repository{}, ErrNotFound
	}
	return repo, nil
}

// List returns all repositories, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]Repository, 0, len(r.byID))
	for _, repo := range r.byID {
		repos = append(repos, repo)
	}
	sort.Slice(repos, func(i, j int) bool {
		return repos[i].CreatedAt.After(repos[j].CreatedAt)
	})
	return repos, nil
}

// Update replaces the mutable fields of an existing repository.
func (r *MemoryRepo) Update(ctx context.Context, repo Repository) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[repo.ID]
	if !ok {
		return ErrNotFound
	}
	existing.URL = repo.URL
	existing.Name = repo.Name
	existing.Description = repo.Description
	existing.UpdatedAt = time.Now().UTC()
	r.byID[repo.ID] = existing
	return nil
}

// UpdateStatus transitions the analysis status of an existing repository.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, repositoryID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	repo, ok := r.byID[repositoryID]
	if !ok {
		return ErrNotFound
	}
	repo.Status = status
	repo.UpdatedAt = time.Now().UTC()
	r.byID[repositoryID] = repo
	return nil
}

// Delete removes a repository.
func (r *MemoryRepo) Delete(ctx context.Context, repositoryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[repositoryID]; !ok {
		return ErrNotFound
	}
	delete(r.byID, repositoryID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
