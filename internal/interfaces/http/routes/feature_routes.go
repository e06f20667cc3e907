package routes

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/handlers"
	"github.com/gofiber/fiber/v2"
)

func registerCatalogRoutes(router fiber.Router, assessmentHandler *handlers.AssessmentHandler) {
	instruments := router.Group("/instruments")
	instruments.Get("/", assessmentHandler.ListInstruments)
	instruments.Get("/:key", assessmentHandler.GetInstrument)
}

func registerAssessmentRoutes(router fiber.Router, assessmentHandler *handlers.AssessmentHandler) {
	assessments := router.Group("/assessments")

	// /results antes de /:key
	assessments.Get("/results", assessmentHandler.GetResults)
	assessments.Get("/", assessmentHandler.ListInstruments)
	assessments.Get("/:key", assessmentHandler.GetInstrument)
	assessments.Post("/:key/progress", assessmentHandler.Progress)
	assessments.Post("/:key/score", assessmentHandler.Score)
	assessments.Post("/:key/submit", assessmentHandler.Submit)
}

func registerShiftRoutes(router fiber.Router, shiftHandler *handlers.ShiftHandler) {
	shifts := router.Group("/shifts")
	shifts.Post("/", shiftHandler.CreateShifts)
	shifts.Get("/", shiftHandler.GetShifts)
	shifts.Put("/:id", shiftHandler.UpdateShift)
	shifts.Delete("/:id", shiftHandler.DeleteShift)
}

func registerSleepLogRoutes(router fiber.Router, sleepLogHandler *handlers.SleepLogHandler) {
	logs := router.Group("/sleep-logs")
	logs.Get("/", sleepLogHandler.GetSleepLogs)
	logs.Get("/:date", sleepLogHandler.GetSleepLog)
	logs.Put("/:date", sleepLogHandler.SaveSleepLog)
	logs.Delete("/:id", sleepLogHandler.DeleteSleepLog)
}

func registerProfileRoutes(router fiber.Router, profileHandler *handlers.ProfileHandler) {
	router.Get("/profile", profileHandler.GetProfile)
	router.Put("/profile", profileHandler.SaveProfile)
	router.Get("/preferences", profileHandler.GetPreferences)
	router.Put("/preferences", profileHandler.SavePreferences)
}

func registerTimelineRoutes(router fiber.Router, timelineHandler *handlers.TimelineHandler) {
	router.Get("/timeline", timelineHandler.GetTimeline)
}

func registerCoachRoutes(router fiber.Router, coachHandler *handlers.CoachHandler) {
	coach := router.Group("/coach")
	coach.Post("/chat", coachHandler.Chat)
	coach.Get("/messages", coachHandler.GetMessages)
}
