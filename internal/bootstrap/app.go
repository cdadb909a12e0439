package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"vibe-backend/internal/analyses"
	"vibe-backend/internal/github"
	"vibe-backend/internal/queue"
	"vibe-backend/internal/repositories"
	"vibe-backend/internal/shared/config"
	"vibe-backend/internal/shared/server"
	"vibe-backend/internal/shared/storage/db"
	"vibe-backend/internal/workerproc"
)

// App holds shared dependencies for the API process and its embedded worker.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Jobs       *queue.MemoryClient
	Dispatcher *workerproc.Dispatcher

	RepositoriesRepo    repositories.Repo
	AnalysesRepo        analyses.Repo
	RepositoriesService *repositories.Service
	AnalysesService     *analyses.Service
	AnalysisProcessor   workerproc.Processor

	RepositoriesHandler *repositories.Handler
	AnalysesHandler     *analyses.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Jobs:   queue.NewMemoryClient(cfg.QueueSize),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		Repositories: app.RepositoriesHandler,
		Analyses:     app.AnalysesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	var repositoriesRepo repositories.Repo
	var analysesRepo analyses.Repo
	if app.DB != nil {
		repositoriesRepo = &repositories.PGRepo{DB: app.DB}
		analysesRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		repositoriesRepo = repositories.NewMemoryRepo()
		analysesRepo = analyses.NewMemoryRepo()
	}

	githubClient := github.NewClient(app.Config.GitHubAPIURL, app.Config.GitHubToken, app.Config.GitHubFetchTimeout)

	analysesSvc := &analyses.Service{
		Repo:         analysesRepo,
		Repositories: repositoriesRepo,
		Fetcher:      githubClient,
	}
	repositoriesSvc := &repositories.Service{
		Repo:     repositoriesRepo,
		Analyses: analysesRepo,
		JobQueue: app.Jobs,
	}

	app.RepositoriesRepo = repositoriesRepo
	app.AnalysesRepo = analysesRepo
	app.RepositoriesService = repositoriesSvc
	app.AnalysesService = analysesSvc
	app.AnalysisProcessor = analysesSvc
	app.RepositoriesHandler = repositories.NewHandler(repositoriesSvc)
	app.AnalysesHandler = analyses.NewHandler(analysesSvc)
	app.Dispatcher = &workerproc.Dispatcher{
		Messages:    app.Jobs.Messages(),
		Processor:   analysesSvc,
		Concurrency: app.Config.WorkerConcurrency,
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
