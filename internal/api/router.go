package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/nutrition-coach/docs"
	"github.com/blaisecz/nutrition-coach/internal/api/handler"
	"github.com/blaisecz/nutrition-coach/internal/api/middleware"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	lifestyleHandler *handler.LifestyleHandler
	mealHandler      *handler.MealHandler
	dietPlanHandler  *handler.DietPlanHandler
	feedbackHandler  *handler.FeedbackHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	lifestyleHandler *handler.LifestyleHandler,
	mealHandler *handler.MealHandler,
	dietPlanHandler *handler.DietPlanHandler,
	feedbackHandler *handler.FeedbackHandler,
) *Router {
	return &Router{
		userHandler:      userHandler,
		lifestyleHandler: lifestyleHandler,
		mealHandler:      mealHandler,
		dietPlanHandler:  dietPlanHandler,
		feedbackHandler:  feedbackHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound("No route matches " + r.URL.Path).At(r).Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.MethodNotAllowed(r.Method + " is not supported on " + r.URL.Path).At(r).Write(w)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Get("/lifestyle", rt.lifestyleHandler.Get)
				r.Put("/lifestyle", rt.lifestyleHandler.Update)

				r.Post("/meals", rt.mealHandler.Create)
				r.Get("/meals", rt.mealHandler.List)
				r.Get("/nutrition/today", rt.mealHandler.Today)

				r.Post("/diet-plans", rt.dietPlanHandler.Create)
				r.Get("/diet-plans/{planId}", rt.dietPlanHandler.Get)

				r.Post("/feedback", rt.feedbackHandler.Create)
			})
		})
	})

	return r
}
