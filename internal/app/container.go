package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/background"
	"github.com/prosport1/ProSport/internal/config"
	"github.com/prosport1/ProSport/internal/database"
	"github.com/prosport1/ProSport/internal/generator"
	"github.com/prosport1/ProSport/internal/repository"
	"github.com/prosport1/ProSport/internal/server"
	"github.com/prosport1/ProSport/internal/storage"
	"github.com/prosport1/ProSport/internal/validation"
)

// Container bundles the assembled services needed to run the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	serverOpts server.Options
	closers    []func()
}

// NewServer instantiates the HTTP server from the pre-built dependency graph.
func (c *Container) NewServer() *server.Server {
	return server.New(c.serverOpts)
}

// Close releases infrastructure connections in reverse construction order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services. Heavy-weight initialization
// (storage/cache/db/model clients) happens here so the pipeline components stay
// focused on orchestration logic. Redis, Postgres and the model credentials are
// all optional; their absence degrades features rather than failing startup.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Artifact storage
	var store storage.Store
	staticDir := ""
	switch cfg.Storage.Backend {
	case config.StorageBackendGCS:
		gcsStore, gcsErr := storage.NewGCSStore(ctx, storage.GCSConfig{
			Bucket:          cfg.Storage.Bucket,
			CredentialsFile: cfg.Storage.CredentialsFile,
		}, logger)
		if gcsErr != nil {
			return nil, fmt.Errorf("failed to create GCS store: %w", gcsErr)
		}
		closers = append(closers, func() { _ = gcsStore.Close() })
		store = gcsStore
	case config.StorageBackendLocal:
		localStore, localErr := storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.LocalBaseURL, logger)
		if localErr != nil {
			return nil, fmt.Errorf("failed to create local store: %w", localErr)
		}
		store = localStore
		staticDir = localStore.Root()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Optional per-slug lock + background URL cache
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr := redisClient.Ping(pingCtx).Err()
		cancel()
		if pingErr != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", pingErr)
		}
		closers = append(closers, func() { _ = redisClient.Close() })
		logger.Info("Redis connected",
			zap.String("addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)),
		)
	} else {
		logger.Info("Redis not configured, background slug lock disabled")
	}

	// Optional artifact history
	var artifacts *repository.ArtifactRepository
	var db server.Pinger
	if cfg.PostgresEnabled() {
		pg, pgErr := database.Connect(ctx, database.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
		}, logger)
		if pgErr != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", pgErr)
		}
		closers = append(closers, func() { _ = pg.Close() })
		db = pg

		artifacts = repository.NewArtifactRepository(pg.DB(), logger)
		if schemaErr := artifacts.EnsureSchema(ctx); schemaErr != nil {
			return nil, schemaErr
		}
	} else {
		logger.Info("Postgres not configured, artifact history disabled")
	}

	// Image model for backgrounds
	var images background.ImageGenerator
	if cfg.Gemini.APIKey != "" {
		gemini, imgErr := background.NewGeminiImageGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.ImageModel, logger)
		if imgErr != nil {
			return nil, fmt.Errorf("failed to create Gemini image generator: %w", imgErr)
		}
		images = gemini
		logger.Info("Background image generation enabled", zap.String("model", cfg.Gemini.ImageModel))
	} else {
		logger.Info("Background image generation disabled (no GEMINI_API_KEY)")
	}

	backgrounds := background.NewCache(store, images, redisClient, logger)

	// Text model for landing pages
	var model generator.HTMLModel
	if cfg.OpenAI.APIKey != "" {
		model = generator.NewOpenAIModel(
			cfg.OpenAI.APIKey, cfg.OpenAI.Model,
			cfg.OpenAI.Temperature, cfg.OpenAI.Timeout, logger,
		)
		logger.Info("Model generation enabled", zap.String("model", cfg.OpenAI.Model))
	} else {
		logger.Warn("OPENAI_API_KEY not set, every request will use the fallback renderer")
	}

	var recorder generator.ArtifactRecorder
	if artifacts != nil {
		recorder = artifacts
	}

	orchestrator := generator.New(generator.Options{
		Backgrounds: backgrounds,
		Model:       model,
		Store:       store,
		Recorder:    recorder,
		Logger:      logger,
	})

	validator, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		serverOpts: server.Options{
			Addr:         cfg.Server.Addr,
			Orchestrator: orchestrator,
			Validator:    validator,
			Artifacts:    artifacts,
			Database:     db,
			StaticDir:    staticDir,
			Logger:       logger,
		},
		closers: closers,
	}, nil
}
