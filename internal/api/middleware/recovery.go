package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"err", err,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", chimw.GetReqID(r.Context()),
					"stack", string(debug.Stack()),
				)
				problem.InternalError("An unexpected error occurred").At(r).Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
