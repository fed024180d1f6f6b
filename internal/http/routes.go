package http

import (
	"time"

	"todo_backend/internal/config"
	"todo_backend/internal/http/handlers"
	"todo_backend/internal/http/middleware"
	"todo_backend/internal/repository"
	"todo_backend/internal/service"
	"todo_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes builds the repository/service/handler chain on top of the
// database pool and mounts every route on r.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	repo := repository.NewPostgresTodoRepository(db)
	svc := service.NewTodoService(repo)

	hub := ws.NewHub()
	h := handlers.NewHandler(svc, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateLimit := 60
	apiRateWindow := time.Minute
	if cfg != nil {
		apiRateLimit = cfg.APIRateLimit
		apiRateWindow = time.Duration(cfg.APIRateWindow) * time.Second
	}

	// probes stay outside the rate limiter
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerTodoRoutes(v1, h)

	// change feed
	r.GET("/ws", h.WS(hub))
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/todoitems", h.GetTodos)
	api.GET("/todoitems/complete", h.GetCompletedTodos)
	api.GET("/todoitems/:id", h.GetTodo)
	api.POST("/todoitems", h.CreateTodo)
	api.PUT("/todoitems/:id", h.UpdateTodo)
	api.DELETE("/todoitems/:id", h.DeleteTodo)
}
