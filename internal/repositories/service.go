package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibe-backend/internal/queue"
	"vibe-backend/internal/shared/telemetry"
)

// AnalysisDeleter removes stored analyses for a repository. Implemented by
// the analyses repo; kept as an interface to avoid a package cycle.
type AnalysisDeleter interface {
	DeleteByRepository(ctx context.Context, repositoryID string) error
}

// Service contains business logic for registered repositories.
type Service struct {
	Repo     Repo
	Analyses AnalysisDeleter
	JobQueue queue.Client
}

// Register records a new repository with status pending and enqueues its
// analysis job. If the job cannot be enqueued the repository is marked failed.
func (s *Service) Register(ctx context.Context, url, name, description string) (Repository, error) {
	url = strings.TrimSpace(url)
	name = strings.TrimSpace(name)
	if url == "" {
		return Repository{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if name == "" {
		name = deriveName(url)
	}

	now := time.Now().UTC()
	repo := Repository{
		ID:          uuid.NewString(),
		URL:         url,
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, repo); err != nil {
		return Repository{}, err
	}

	msg := queue.Message{
		RepositoryID: repo.ID,
		EnqueuedAt:   now,
		Version:      1,
	}
	if err := s.JobQueue.Send(ctx, msg); err != nil {
		telemetry.Error("repositories.enqueue_failed", map[string]any{
			"repositoryId": repo.ID,
			"error":        err.Error(),
		})
		if updateErr := s.Repo.UpdateStatus(ctx, repo.ID, StatusFailed); updateErr != nil {
			telemetry.Error("repositories.mark_failed_failed", map[string]any{
				"repositoryId": repo.ID,
				"error":        updateErr.Error(),
			})
		}
		return Repository{}, err
	}

	return repo, nil
}

// Get returns a repository by ID.
func (s *Service) Get(ctx context.Context, repositoryID string) (Repository, error) {
	return s.Repo.GetByID(ctx, repositoryID)
}

// List returns all registered repositories, newest first.
func (s *Service) List(ctx context.Context) ([]Repository, error) {
	return s.Repo.List(ctx)
}

// Update replaces the url, name and description of a repository. Analysis
// status is owned by the pipeline and not touched here.
func (s *Service) Update(ctx context.Context, repositoryID, url, name, description string) (Repository, error) {
	url = strings.TrimSpace(url)
	name = strings.TrimSpace(name)
	if url == "" {
		return Repository{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if name == "" {
		name = deriveName(url)
	}

	repo := Repository{
		ID:          repositoryID,
		URL:         url,
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.Repo.Update(ctx, repo); err != nil {
		return Repository{}, err
	}
	return s.Repo.GetByID(ctx, repositoryID)
}

// Delete removes a repository and its stored analyses.
func (s *Service) Delete(ctx context.Context, repositoryID string) error {
	if _, err := s.Repo.GetByID(ctx, repositoryID); err != nil {
		return err
	}
	if s.Analyses != nil {
		if err := s.Analyses.DeleteByRepository(ctx, repositoryID); err != nil {
			return err
		}
	}
	return s.Repo.Delete(ctx, repositoryID)
}

func deriveName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return strings.TrimSuffix(trimmed, ".git")
}
