// Command vcfreadyd is the hosted vcfready service.
// It serves the assessment REST API and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcfready/vcfready/internal/api"
	"github.com/vcfready/vcfready/internal/assessment"
	"github.com/vcfready/vcfready/internal/blob"
	"github.com/vcfready/vcfready/internal/platform"
	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/readiness"
)

type config struct {
	Port         string
	SessionStore string // memory, postgres, redis
	DatabaseURL  string
	RedisURL     string
	BlobBackend  string
	BlobBucket   string
	BlobRegion   string
	BlobEndpoint string
	StoragePath  string
	CatalogPath  string
	Classifier   string
	APIKey       string
	LogLevel     string
}

func loadConfig() config {
	return config{
		Port:         envOrDefault("PORT", "8080"),
		SessionStore: envOrDefault("SESSION_STORE", "memory"),
		DatabaseURL:  envOrDefault("DATABASE_URL", "postgres://localhost:5432/vcfready?sslmode=disable"),
		RedisURL:     envOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		BlobBackend:  envOrDefault("BLOB_BACKEND", "local"),
		BlobBucket:   os.Getenv("BLOB_BUCKET"),
		BlobRegion:   os.Getenv("BLOB_REGION"),
		BlobEndpoint: os.Getenv("BLOB_ENDPOINT"),
		StoragePath:  envOrDefault("LOCAL_STORAGE_PATH", "/tmp/vcfready-data"),
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		Classifier:   envOrDefault("CLASSIFIER", "phrase"),
		APIKey:       os.Getenv("API_KEY"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("vcfreadyd exited", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return err
	}
	classifier, err := readiness.ClassifierByName(cfg.Classifier)
	if err != nil {
		return err
	}
	engine := readiness.NewEngine(readiness.WithClassifier(classifier), readiness.WithOrder(cat.Order()))

	store, health, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	blobs, err := blob.Open(ctx, blob.Options{
		Backend:  cfg.BlobBackend,
		LocalDir: cfg.StoragePath,
		Bucket:   cfg.BlobBucket,
		Region:   cfg.BlobRegion,
		Endpoint: cfg.BlobEndpoint,
	})
	if err != nil {
		return fmt.Errorf("open report storage: %w", err)
	}

	svc := assessment.NewService(store, blobs, cat, engine, logger.Named("assessment"))
	handler := api.NewHandler(svc, logger.Named("api"))

	// Set up HTTP routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	var root http.Handler = mux
	root = api.APIKeyAuth(cfg.APIKey)(root)
	root = api.CORS(root)
	root = api.RequestLogger(logger.Named("http"))(root)

	// health stays outside API key auth
	outer := http.NewServeMux()
	outer.HandleFunc("GET /healthz", healthHandler(health))
	outer.Handle("/", root)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           outer,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting vcfreadyd",
			zap.String("port", cfg.Port),
			zap.String("session_store", cfg.SessionStore),
			zap.String("blob_backend", cfg.BlobBackend),
			zap.String("classifier", classifier.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore builds the session store named by SESSION_STORE. The returned
// health func checks the backing service, if any.
func openStore(ctx context.Context, cfg config, logger *zap.Logger) (assessment.Store, func(context.Context) error, func(), error) {
	noop := func() {}
	healthy := func(context.Context) error { return nil }

	switch cfg.SessionStore {
	case "memory":
		return assessment.NewMemoryStoreFromEnv(), healthy, noop, nil

	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, noop, fmt.Errorf("ping database: %w", err)
		}
		if err := platform.AutoMigrate(db); err != nil {
			db.Close()
			return nil, nil, noop, fmt.Errorf("migrate: %w", err)
		}
		names, _ := platform.Migrations()
		logger.Info("postgres session store ready", zap.Int("migrations", len(names)))
		return assessment.NewPostgresStore(db), db.PingContext, func() { db.Close() }, nil

	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		logger.Info("redis session store ready", zap.String("addr", opts.Addr))
		ping := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return assessment.NewRedisStore(rdb, assessment.DefaultSessionTTL, logger), ping, func() { rdb.Close() }, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown SESSION_STORE %q (want memory, postgres or redis)", cfg.SessionStore)
	}
}

func healthHandler(check func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := check(r.Context()); err != nil {
			http.Error(w, "session store unreachable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
