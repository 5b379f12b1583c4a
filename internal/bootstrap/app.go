package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"profile-backend/internal/profiles"
	"profile-backend/internal/services/health"
	"profile-backend/internal/shared/config"
	"profile-backend/internal/shared/server"
	"profile-backend/internal/shared/storage/db"
	"profile-backend/internal/shared/storage/docstore"
	"profile-backend/internal/shared/storage/object"
	localstore "profile-backend/internal/shared/storage/object/local"
	miniostore "profile-backend/internal/shared/storage/object/minio"
	s3store "profile-backend/internal/shared/storage/object/s3"
	"profile-backend/internal/uploads"
	"profile-backend/web"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config config.Config
	Router *gin.Engine

	DB          *sql.DB
	MongoClient *mongo.Client
	Store       object.ObjectStore

	ProfilesRepo    profiles.ProfilesRepo
	ProfilesService *profiles.Service
	UploadsService  *uploads.Service
	HealthService   *health.Service

	ProfilesHandler *profiles.Handler
	UploadsHandler  *uploads.Handler
	WebHandler      *web.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.ProfileStoreType) == "" {
		cfg.ProfileStoreType = "mongo"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Store:  store,
	}

	if err := buildProfilesRepo(ctx, cfg, app); err != nil {
		return nil, err
	}

	webHandler, err := web.NewHandler()
	if err != nil {
		return nil, err
	}

	app.ProfilesService = &profiles.Service{Repo: app.ProfilesRepo}
	app.UploadsService = &uploads.Service{Store: store}
	app.HealthService = health.NewService()
	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.UploadsHandler = uploads.NewHandler(app.UploadsService)
	app.WebHandler = webHandler

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		HealthService:   app.HealthService,
		ProfilesHandler: app.ProfilesHandler,
		UploadsHandler:  app.UploadsHandler,
		WebHandler:      app.WebHandler,
	})

	return app, nil
}

// Close releases the backing store clients.
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			firstErr = err
		}
	}
	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return storeFallback(cfg, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET"))
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3PublicBase)
		if err != nil {
			return storeFallback(cfg, err)
		}
		return store, nil
	case "minio":
		store, err := miniostore.New(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
		if err != nil {
			return storeFallback(cfg, err)
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func storeFallback(cfg config.Config, cause error) (object.ObjectStore, error) {
	if isDevLike(cfg.Env) {
		log.Printf("bootstrap: object store init failed; using local store: %v", cause)
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
	return nil, cause
}

func buildProfilesRepo(ctx context.Context, cfg config.Config, app *App) error {
	switch cfg.ProfileStoreType {
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return repoFallback(app, cfg, fmt.Errorf("PROFILE_STORE=postgres requires DATABASE_URL"))
		}
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return repoFallback(app, cfg, err)
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return repoFallback(app, cfg, err)
		}
		app.DB = sqlDB
		app.ProfilesRepo = &profiles.PGRepo{DB: sqlDB}
		return nil
	case "memory":
		app.ProfilesRepo = profiles.NewMemoryRepo()
		return nil
	default:
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return repoFallback(app, cfg, fmt.Errorf("PROFILE_STORE=mongo requires MONGO_URI"))
		}
		client, err := docstore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return repoFallback(app, cfg, err)
		}
		col := docstore.Collection(client, cfg.MongoDatabase, cfg.MongoCollection)
		if err := docstore.EnsureProfileIndexes(ctx, col); err != nil {
			log.Printf("bootstrap: ensure profile indexes: %v", err)
		}
		app.MongoClient = client
		app.ProfilesRepo = &profiles.MongoRepo{Col: col}
		return nil
	}
}

func repoFallback(app *App, cfg config.Config, cause error) error {
	if isDevLike(cfg.Env) {
		log.Printf("bootstrap: profile store init failed; using in-memory repository: %v", cause)
		app.ProfilesRepo = profiles.NewMemoryRepo()
		return nil
	}
	return cause
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
