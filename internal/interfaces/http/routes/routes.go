package routes

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/application/usecases"
	"github.com/PavaniTiago/sleep-coach-api/internal/config"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/auth"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

// Dependencies reúne o que a API precisa para montar as rotas.
// Model pode ser nil quando a chave do Gemini não está configurada.
type Dependencies struct {
	DB       *gorm.DB
	Catalog  *assessment.Catalog
	Verifier auth.Verifier
	Model    usecases.ChatModel
	Config   *config.Config
	Log      *logger.Logger
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	cfg := deps.Config
	location := utils.GetLocation(cfg.Timezone)

	// Repositories
	shiftRepo := repositories.NewShiftRepository(deps.DB)
	sleepLogRepo := repositories.NewSleepLogRepository(deps.DB)
	profileRepo := repositories.NewProfileRepository(deps.DB)
	messageRepo := repositories.NewChatMessageRepository(deps.DB)
	assessmentRepo := repositories.NewAssessmentRepository(deps.DB)

	// Use Cases
	uc := handlers.UseCases{
		Assessment: usecases.NewAssessmentUseCase(deps.Catalog, assessmentRepo, profileRepo, deps.Log),
		Shift:      usecases.NewShiftUseCase(shiftRepo, deps.Log),
		SleepLog:   usecases.NewSleepLogUseCase(sleepLogRepo, deps.Log),
		Profile:    usecases.NewProfileUseCase(profileRepo, deps.Log),
		Timeline: usecases.NewTimelineUseCase(shiftRepo, profileRepo, usecases.TimelineOptions{
			DefaultDays:  cfg.TimelineDays,
			Personalized: cfg.TimelinePersonalized,
			Location:     location,
		}, deps.Log),
		Coach: usecases.NewCoachUseCase(deps.Model, messageRepo, profileRepo, sleepLogRepo, usecases.CoachOptions{
			RateLimit:    cfg.ChatRateLimit,
			HistoryLimit: cfg.ChatHistoryLimit,
		}, deps.Log),
	}

	// Handlers
	h := handlers.NewHandlers(uc, handlers.NewPerformanceHandler(deps.DB), deps.Log)

	// Health check
	app.Get("/health", h.Performance.Health)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.Auth(deps.Verifier, deps.Log))

	// Catálogo de questionários é público
	registerCatalogRoutes(groups.Public, h.Assessment)

	registerAssessmentRoutes(groups.Authenticated, h.Assessment)
	registerShiftRoutes(groups.Authenticated, h.Shift)
	registerSleepLogRoutes(groups.Authenticated, h.SleepLog)
	registerProfileRoutes(groups.Authenticated, h.Profile)
	registerTimelineRoutes(groups.Authenticated, h.Timeline)
	registerCoachRoutes(groups.Authenticated, h.Coach)

	// Rotas de Performance
	setupPerformanceRoutes(groups.Authenticated, h.Performance)
}

// setupPerformanceRoutes configura as rotas de teste de performance
func setupPerformanceRoutes(router fiber.Router, performanceHandler *handlers.PerformanceHandler) {
	if performanceHandler != nil {
		perfGroup := router.Group("/performance")
		perfGroup.Get("/queries", performanceHandler.TestQueryPerformance)
	}
}
