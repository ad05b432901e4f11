// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fuelapp/v1/internal/application/grocery"
	"github.com/fuelapp/v1/internal/application/mealentry"
	"github.com/fuelapp/v1/internal/application/recipe"
	"github.com/fuelapp/v1/internal/application/user"
	"github.com/fuelapp/v1/internal/infrastructure/config"
	"github.com/fuelapp/v1/internal/infrastructure/http/apiserver"
	gormrepo "github.com/fuelapp/v1/internal/infrastructure/persistence/gorm"
	"github.com/fuelapp/v1/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/fuelapp/v1/internal/infrastructure/persistence/redis"
	"github.com/fuelapp/v1/internal/infrastructure/persistence/sqlite"
	"github.com/fuelapp/v1/internal/infrastructure/security"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	SecurityModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			return postgres.Connect(cfg, log)
		case "sqlite":
			logLevel := gormlogger.Warn
			if cfg.App.Debug {
				logLevel = gormlogger.Info
			}
			db, err := sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup sqlite database: %w", err)
			}
			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.SQLitePath),
			)
			return db, nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	},
)

// CacheModule provides Redis-backed caching
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*goredis.Client, error) {
		return redisrepo.NewClient(cfg, log)
	},
	redisrepo.NewCacheRepository,
)

// SecurityModule provides token issuance and verification
var SecurityModule = fx.Provide(
	security.NewTokenService,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewUserRepository,
	gormrepo.NewRecipeRepository,
	gormrepo.NewGroceryRepository,
	gormrepo.NewMealRepository,
	gormrepo.NewTransactionManager,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		userRepo outbound.UserRepository,
		tokens outbound.TokenService,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.UserService {
		return user.NewUserService(userRepo, tokens, cfg.Auth.BCryptCost, log)
	},
	recipe.NewRecipeService,
	grocery.NewGroceryService,
	mealentry.NewMealService,
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Fuel application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Fuel application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
