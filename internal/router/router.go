package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	_ "pet-api/docs"
	mem "pet-api/internal/adapters/storage/memory"
	"pet-api/internal/domain/pets"
	"pet-api/internal/domain/pettypes"
	"pet-api/internal/middleware"
	"pet-api/internal/platform/problem"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type Options struct {
	// Opcional: si viene nil, usa el repo in-memory.
	Pets pets.Repository

	// Opcional: si viene nil, usa math/rand/v2.
	Sampler *pettypes.Sampler

	Logger *zap.Logger
}

type pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	petRepo := opts.Pets
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}

	sampler := opts.Sampler
	if sampler == nil {
		sampler = pettypes.NewSampler(nil)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", healthHandler(petRepo, log))

	// Catch-all de errores: mismo cuerpo que un panic recuperado.
	r.Get("/error", func(w http.ResponseWriter, _ *http.Request) {
		problem.WriteInternal(w)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	pets.RegisterRoutes(r, pets.NewService(petRepo), log)
	pettypes.RegisterRoutes(r, sampler)

	return r
}

func healthHandler(repo pets.Repository, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := repo.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := p.Ping(ctx); err != nil {
				log.Warn("health: store ping failed", zap.Error(err))
				problem.Write(w, http.StatusServiceUnavailable, "store unavailable", err.Error())
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
