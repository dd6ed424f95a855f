package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pricematch-service/internal/config"
	recHnd "pricematch-service/internal/match/handler"
	recSvc "pricematch-service/internal/match/service"
	"pricematch-service/internal/middleware"
	"pricematch-service/server/http/handlers"
)

func NewRouter(cfg config.Config, dict *recSvc.Dictionary, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// основной эндпоинт
	r.Post("/match", recHnd.Match(cfg, dict, logger))

	return r
}
