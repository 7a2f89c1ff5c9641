package middleware

import (
	"net/http"

	"pet-api/internal/platform/problem"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con zap y responde
// el mismo 500 problem+json que la ruta /error.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.Stack("stack"),
				)

				if r.Header.Get("Connection") != "Upgrade" {
					problem.WriteInternal(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
