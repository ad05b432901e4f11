// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fuelapp/v1/internal/infrastructure/config"
	"github.com/fuelapp/v1/internal/infrastructure/http/handlers"
	"github.com/fuelapp/v1/internal/infrastructure/http/middleware"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config         *config.Config
	logger         *zap.Logger
	server         *http.Server
	router         *chi.Mux
	tokens         outbound.TokenService
	userService    inbound.UserService
	recipeService  inbound.RecipeService
	groceryService inbound.GroceryService
	mealService    inbound.MealService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	tokens outbound.TokenService,
	userService inbound.UserService,
	recipeService inbound.RecipeService,
	groceryService inbound.GroceryService,
	mealService inbound.MealService,
) *APIServer {
	server := &APIServer{
		config:         cfg,
		logger:         log,
		tokens:         tokens,
		userService:    userService,
		recipeService:  recipeService,
		groceryService: groceryService,
		mealService:    mealService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())
	if s.config.RateLimit.Enable {
		r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize))
	}
	if s.config.Metrics.Enable {
		r.Use(middleware.NewMetrics().Instrument())
		r.Handle(s.config.Metrics.Path, promhttp.Handler())
	}

	healthH := handlers.NewHealthHandlers(s.config.App.Version, s.logger)
	r.Get("/health", healthH.HealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthAPIHandlers(s.userService, s.logger)
	recipeH := handlers.NewRecipeAPIHandlers(s.recipeService, s.logger)
	groceryH := handlers.NewGroceryAPIHandlers(s.groceryService, s.logger)
	trackH := handlers.NewTrackAPIHandlers(s.mealService, s.logger)

	// Authentication routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)

		// Protected auth routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.tokens))
			r.Get("/me", authH.Profile)
			r.Put("/me/goals", authH.SetGoals)
		})
	})

	// Recipe routes
	r.Route("/recipes", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Post("/", recipeH.SaveRecipe)
		r.Get("/", recipeH.ListRecipes)
		r.Get("/{id}", recipeH.GetRecipe)
		r.Delete("/{id}", recipeH.DeleteRecipe)
	})

	// Grocery list routes
	r.Route("/grocery", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Get("/", groceryH.ListItems)
		r.Post("/", groceryH.AddItem)
		r.Post("/from-recipe", groceryH.ImportFromRecipe)
		r.Delete("/checked", groceryH.ClearChecked)
		r.Patch("/{id}", groceryH.UpdateItem)
		r.Delete("/{id}", groceryH.DeleteItem)
	})

	// Meal tracking routes
	r.Route("/track", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))
		r.Post("/", trackH.LogMeal)
		r.Get("/summary", trackH.DailySummary)
		r.Put("/{id}", trackH.CorrectMeal)
		r.Delete("/{id}", trackH.DeleteMeal)
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
