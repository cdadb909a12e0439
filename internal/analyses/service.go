package analyses

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibe-backend/internal/github"
	"vibe-backend/internal/insight"
	"vibe-backend/internal/repositories"
	"vibe-backend/internal/shared/metrics"
	"vibe-backend/internal/shared/telemetry"
)

// Fetcher provides repository metadata and a bounded file tree from the
// remote hosting API.
type Fetcher interface {
	Repository(ctx context.Context, owner, name string) (insight.Metadata, error)
	Tree(ctx context.Context, owner, name string) (insight.Tree, error)
}

// Service runs the analysis pipeline and serves stored results.
type Service struct {
	Repo         Repo
	Repositories repositories.Repo
	Fetcher      Fetcher
}

// ParseSourceURL extracts the owner and name from a GitHub repository URL.
func ParseSourceURL(raw string) (string, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrMalformedReference, raw)
	}
	if !strings.Contains(parsed.Host, "github.com") {
		return "", "", fmt.Errorf("%w: host %q is not github", ErrMalformedReference, parsed.Host)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("%w: path %q", ErrMalformedReference, parsed.Path)
	}
	return segments[0], strings.TrimSuffix(segments[1], ".git"), nil
}

// ProcessRepository runs the full pipeline for one registered repository:
// fetch metadata and file tree, derive technologies, patterns,
// recommendations and a complexity score, store the result atomically and
// transition the repository status. A repository the remote confirms as
// missing or empty still completes, with a minimal placeholder analysis.
func (s *Service) ProcessRepository(ctx context.Context, repositoryID string) error {
	repo, err := s.Repositories.GetByID(ctx, repositoryID)
	if err != nil {
		return fmt.Errorf("load repository %s: %w", repositoryID, err)
	}

	start := time.Now()
	if err := s.Repositories.UpdateStatus(ctx, repositoryID, repositories.StatusAnalyzing); err != nil {
		return fmt.Errorf("mark analyzing: %w", err)
	}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"repositoryId": repositoryID,
		"from":         repo.Status,
		"to":           repositories.StatusAnalyzing,
		"request_id":   requestIDFromContext(ctx),
	})

	owner, name, err := ParseSourceURL(repo.URL)
	if err != nil {
		return s.fail(ctx, repositoryID, err)
	}

	analysis, err := s.analyze(ctx, repositoryID, owner, name)
	if err != nil {
		return s.fail(ctx, repositoryID, err)
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return s.fail(ctx, repositoryID, fmt.Errorf("store analysis: %w", err))
	}
	if err := s.Repositories.UpdateStatus(ctx, repositoryID, repositories.StatusCompleted); err != nil {
		return s.fail(ctx, repositoryID, fmt.Errorf("mark completed: %w", err))
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("analysis.completed", map[string]any{
		"repositoryId":    repositoryID,
		"analysisId":      analysis.ID,
		"complexityScore": analysis.ComplexityScore,
		"durationMs":      time.Since(start).Milliseconds(),
		"request_id":      requestIDFromContext(ctx),
	})
	return nil
}

func (s *Service) analyze(ctx context.Context, repositoryID, owner, name string) (Analysis, error) {
	meta, err := s.Fetcher.Repository(ctx, owner, name)
	if err != nil {
		if isUnavailable(err) {
			return minimalAnalysis(repositoryID, insight.Metadata{}), nil
		}
		return Analysis{}, fmt.Errorf("fetch metadata: %w", err)
	}

	tree, err := s.Fetcher.Tree(ctx, owner, name)
	if err != nil {
		return Analysis{}, fmt.Errorf("fetch tree: %w", err)
	}
	if len(tree) == 0 {
		return minimalAnalysis(repositoryID, meta), nil
	}

	technologies := insight.DetectTechnologies(tree, meta)
	patterns := insight.AnalyzePatterns(tree, technologies)
	recommendations := insight.Recommend(tree, technologies, meta)

	return Analysis{
		ID:              uuid.NewString(),
		RepositoryID:    repositoryID,
		FileStructure:   tree,
		Technologies:    technologies,
		Patterns:        patterns,
		Recommendations: recommendations,
		ComplexityScore: insight.ComplexityScore(tree, technologies, meta),
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func (s *Service) fail(ctx context.Context, repositoryID string, cause error) error {
	metrics.IncAnalysisFailed()
	telemetry.Error("analysis.failed", map[string]any{
		"repositoryId": repositoryID,
		"error":        cause.Error(),
		"request_id":   requestIDFromContext(ctx),
	})
	if err := s.Repositories.UpdateStatus(ctx, repositoryID, repositories.StatusFailed); err != nil {
		telemetry.Error("analysis.mark_failed_failed", map[string]any{
			"repositoryId": repositoryID,
			"error":        err.Error(),
		})
	}
	return cause
}

func isUnavailable(err error) bool {
	return errors.Is(err, github.ErrUnavailable)
}

// minimalAnalysis is the stored result for a repository whose content the
// remote confirms as missing, private or empty.
func minimalAnalysis(repositoryID string, meta insight.Metadata) Analysis {
	technologies := []string{"Unknown"}
	if meta.Language != "" {
		technologies = []string{meta.Language}
	}
	return Analysis{
		ID:           uuid.NewString(),
		RepositoryID: repositoryID,
		FileStructure: insight.Tree{
			"README.md": insight.Placeholder("Repository content not accessible"),
		},
		Technologies:    technologies,
		Patterns:        []string{"Repository structure not analyzable"},
		Recommendations: []string{"Repository appears to be empty or private", "Add public content for analysis"},
		ComplexityScore: 1.0,
		CreatedAt:       time.Now().UTC(),
	}
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns all analyses, newest first.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.Repo.List(ctx)
}

// ListByRepository returns the analyses for one repository, newest first.
// The repository must exist.
func (s *Service) ListByRepository(ctx context.Context, repositoryID string) ([]Analysis, error) {
	if _, err := s.Repositories.GetByID(ctx, repositoryID); err != nil {
		return nil, err
	}
	return s.Repo.ListByRepository(ctx, repositoryID)
}
