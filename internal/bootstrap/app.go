package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"critique-backend/internal/account"
	googleauth "critique-backend/internal/auth"
	"critique-backend/internal/critiques"
	"critique-backend/internal/sessions"
	"critique-backend/internal/shared/config"
	"critique-backend/internal/shared/server"
	"critique-backend/internal/shared/storage/db"
	"critique-backend/internal/shared/storage/object"
	localstore "critique-backend/internal/shared/storage/object/local"
	s3store "critique-backend/internal/shared/storage/object/s3"
	"critique-backend/internal/usage"
	"critique-backend/internal/users"
	"critique-backend/internal/wireframes"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	WireframesRepo wireframes.Repo
	CritiquesRepo  critiques.Repo
	SessionsRepo   sessions.Repo
	UsersRepo      users.Repo

	WireframesService *wireframes.Service
	CritiquesService  *critiques.Service
	SessionsService   *sessions.Service
	UsageService      *usage.Service
	AccountService    *account.Service
	UsersService      *users.Service

	WireframesHandler *wireframes.Handler
	CritiquesHandler  *critiques.Handler
	SessionsHandler   *sessions.Handler
	UsageHandler      *usage.Handler
	AccountHandler    *account.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		AccountHandler:   app.AccountHandler,
		CritiqueHandler:  app.CritiquesHandler,
		SessionHandler:   app.SessionsHandler,
		WireframeHandler: app.WireframesHandler,
		UsageHandler:     app.UsageHandler,
		UserHandler:      app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
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

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
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

func buildServices(app *App) error {
	var wfRepo wireframes.Repo
	var critiqueRepo critiques.Repo
	var sessionRepo sessions.Repo
	var userRepo users.Repo

	if app.DB != nil {
		wfRepo = &wireframes.PGRepo{DB: app.DB}
		critiqueRepo = &critiques.PGRepo{DB: app.DB}
		sessionRepo = &sessions.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		wfRepo = wireframes.NewMemoryRepo()
		critiqueRepo = critiques.NewMemoryRepo()
		sessionRepo = sessions.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var usageSvc *usage.Service
	if app.DB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		usageSvc = usage.NewService()
	}

	wfSvc := &wireframes.Service{
		Store: app.Store,
		Repo:  wfRepo,
	}

	critiqueSvc := &critiques.Service{
		Repo:          critiqueRepo,
		Usage:         usageSvc,
		WireframeRepo: wfRepo,
		Store:         app.Store,
		Version:       app.Config.CritiqueVersion,
	}

	sessionSvc := &sessions.Service{Repo: sessionRepo}

	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.WireframesRepo = wfRepo
	app.CritiquesRepo = critiqueRepo
	app.SessionsRepo = sessionRepo
	app.UsersRepo = userRepo
	app.WireframesService = wfSvc
	app.CritiquesService = critiqueSvc
	app.SessionsService = sessionSvc
	app.UsageService = usageSvc
	app.AccountService = account.NewService(wfRepo, critiqueRepo)
	app.UsersService = userSvc
	app.WireframesHandler = wireframes.NewHandler(wfSvc)
	app.CritiquesHandler = critiques.NewHandler(critiqueSvc)
	app.SessionsHandler = sessions.NewHandler(sessionSvc)
	app.UsageHandler = usage.NewHandler(usageSvc)
	app.AccountHandler = account.NewHandler(app.AccountService)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	if app.WireframesHandler == nil || app.CritiquesHandler == nil || app.UsageHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}
