// Nutrition Coach API
//
// REST API for meal logging, timing-aware nutrition guidance and diet plans.
//
//	@title			Nutrition Coach API
//	@version		1.0
//	@description	Log meal photos, track daily macros in the user's timezone, and generate diet plans aligned with sleep and meal timing.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			lifestyle
//	@tag.description	Wake, meal and sleep schedule
//
//	@tag.name			meals
//	@tag.description	Meal photo logging and daily nutrition
//
//	@tag.name			diet-plans
//	@tag.description	AI diet plan generation
//
//	@tag.name			feedback
//	@tag.description	User ratings for AI responses
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/blaisecz/nutrition-coach/internal/api"
	"github.com/blaisecz/nutrition-coach/internal/api/handler"
	"github.com/blaisecz/nutrition-coach/internal/config"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/blaisecz/nutrition-coach/internal/llm"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/internal/repository"
	"github.com/blaisecz/nutrition-coach/internal/seed"
	"github.com/blaisecz/nutrition-coach/internal/service"
	"github.com/blaisecz/nutrition-coach/internal/storage"
	"github.com/blaisecz/nutrition-coach/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", "err", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			return err
		}
	}

	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	dietPrompt := loadPrompt(ctx, cfg, cfg.LangfuseDietPromptName, llm.DefaultDietPlanPrompt)
	mealPrompt := loadPrompt(ctx, cfg, cfg.LangfuseMealPromptName, llm.DefaultMealAnalysisPrompt)

	// A model pinned in the Langfuse prompt config wins over the env default
	planModel, visionModel := cfg.OpenAIDietPlanModel, cfg.OpenAIMealVisionModel
	if dietPrompt.Model != "" {
		planModel = dietPrompt.Model
	}
	if mealPrompt.Model != "" {
		visionModel = mealPrompt.Model
	}

	// Initialize OpenAI client (may be nil if not configured)
	var (
		generator llm.DietPlanGenerator
		analyzer  llm.MealImageAnalyzer
	)
	openaiClient := llm.NewOpenAIClient(llm.Config{
		APIKey:             cfg.OpenAIAPIKey,
		PlanModel:          planModel,
		VisionModel:        visionModel,
		DietPlanPrompt:     dietPrompt.Text,
		MealAnalysisPrompt: mealPrompt.Text,
	})
	if openaiClient != nil {
		generator = openaiClient
		analyzer = openaiClient
	} else {
		logger.Warn("OpenAI API key not configured, diet plans and meal analysis use local fallbacks")
	}

	photos, err := storage.NewPhotoStore(ctx, storage.S3Config{
		Bucket: cfg.PhotoBucket,
		Region: cfg.PhotoRegion,
		Prefix: cfg.PhotoPrefix,
	})
	if err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	lifestyleRepo := repository.NewLifestyleRepository(db)
	mealLogRepo := repository.NewMealLogRepository(db)
	dietRepo := repository.NewDietRequestRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	lifestyleService := service.NewLifestyleService(lifestyleRepo, userRepo)
	nutritionService := service.NewNutritionService(userRepo, lifestyleRepo, mealLogRepo, analyzer, photos, lfClient)
	dietPlanService := service.NewDietPlanService(userRepo, lifestyleRepo, dietRepo, generator, lfClient)

	// Initialize handlers
	router := api.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewLifestyleHandler(lifestyleService),
		handler.NewMealHandler(nutritionService, cfg.MaxUploadBytes()),
		handler.NewDietPlanHandler(dietPlanService),
		handler.NewFeedbackHandler(lfClient),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadPrompt(ctx context.Context, cfg *config.Config, name, fallback string) langfuse.Prompt {
	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  name,
		PromptLabel: cfg.LangfusePromptLabel,
		SavePath:    langfuse.CachePath(cfg.PromptCacheDir, name),
		Fallback:    fallback,
	})
	if err != nil {
		logger.Warn("prompt unavailable, using built-in", "prompt", name, "err", err)
		return langfuse.Prompt{Name: name, Text: fallback, Source: langfuse.PromptSourceBuiltin}
	}
	return prompt
}
