package analyses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"vibe-backend/internal/insight"
	"vibe-backend/internal/repositories"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service, *repositories.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repositories.NewMemoryRepo()
	svc := &Service{Repo: NewMemoryRepo(), Repositories: repos}
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return r, svc, repos
}

func seedAnalysis(t *testing.T, svc *Service, id, repositoryID string, createdAt time.Time) Analysis {
	t.Helper()
	analysis := Analysis{
		ID:              id,
		RepositoryID:    repositoryID,
		FileStructure:   insight.Tree{"main.go": insight.File(10)},
		Technologies:    []string{"Go"},
		Patterns:        []string{"Documentation practices"},
		Recommendations: []string{"Add unit tests to improve code reliability"},
		ComplexityScore: 2.5,
		CreatedAt:       createdAt,
	}
	if err := svc.Repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("seed analysis: %v", err)
	}
	return analysis
}

func TestGetAnalysisSerializesResult(t *testing.T) {
	r, svc, _ := newTestRouter(t)
	seedAnalysis(t, svc, "analysis-1", "repo-1", time.Now().UTC())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/analysis-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["repositoryId"] != "repo-1" {
		t.Fatalf("expected repositoryId, got %v", body["repositoryId"])
	}
	structure, ok := body["fileStructure"].(map[string]any)
	if !ok {
		t.Fatalf("expected fileStructure object, got %T", body["fileStructure"])
	}
	if structure["main.go"] != "10 bytes" {
		t.Fatalf("expected wire-format leaf, got %v", structure["main.go"])
	}
	if _, ok := body["technologiesDetected"]; !ok {
		t.Fatalf("expected technologiesDetected key")
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListAnalysesNewestFirst(t *testing.T) {
	r, svc, _ := newTestRouter(t)
	now := time.Now().UTC()
	seedAnalysis(t, svc, "analysis-old", "repo-1", now.Add(-time.Minute))
	seedAnalysis(t, svc, "analysis-new", "repo-2", now)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 || out[0].ID != "analysis-new" {
		t.Fatalf("expected newest first, got %+v", out)
	}
}

func TestListByRepositoryRequiresRepository(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/repository/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown repository, got %d", w.Code)
	}
}

func TestListByRepositoryReturnsOwnAnalysesOnly(t *testing.T) {
	r, svc, repos := newTestRouter(t)

	now := time.Now().UTC()
	if err := repos.Create(context.Background(), repositories.Repository{
		ID: "repo-1", URL: "https://github.com/octo/widget", Name: "widget",
		Status: repositories.StatusCompleted, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed repository: %v", err)
	}
	seedAnalysis(t, svc, "analysis-1", "repo-1", now)
	seedAnalysis(t, svc, "analysis-2", "repo-2", now)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/repository/repo-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].ID != "analysis-1" {
		t.Fatalf("expected only repo-1 analyses, got %+v", out)
	}
}
