package handlers

import (
	"context"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PerformanceHandler struct {
	db *gorm.DB
}

func NewPerformanceHandler(db *gorm.DB) *PerformanceHandler {
	return &PerformanceHandler{
		db: db,
	}
}

// Health verifica a conexão com o banco e devolve a latência do ping
func (h *PerformanceHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "error": "database unavailable"})
	}

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "error": "database unavailable"})
	}

	stats := sqlDB.Stats()
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
		"database": fiber.Map{
			"ping_ms":          time.Since(start).Milliseconds(),
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		},
	})
}

// TestQueryPerformance mede as consultas usadas pela timeline e pelo coach para o usuário autenticado
func (h *PerformanceHandler) TestQueryPerformance(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	db := h.db.WithContext(c.UserContext())

	// Turnos dos próximos 7 dias (índice user_id, date)
	start := time.Now()
	var shifts int64
	today := time.Now().Format("2006-01-02")
	week := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	if err := db.Model(&entities.Shift{}).
		Where(`user_id = ? AND "date" BETWEEN ? AND ?`, userID, today, week).
		Count(&shifts).Error; err != nil {
		return respondError(c, err)
	}
	shiftDuration := time.Since(start)

	// Diários recentes (índice único user_id, date)
	start = time.Now()
	var logs []entities.SleepLog
	if err := db.Where("user_id = ?", userID).Order(`"date" DESC`).Limit(7).Find(&logs).Error; err != nil {
		return respondError(c, err)
	}
	logDuration := time.Since(start)

	// Contagem da janela de rate limit (índice user_id, role, timestamp)
	start = time.Now()
	var recent int64
	if err := db.Model(&entities.ChatMessage{}).
		Where(`user_id = ? AND role = ? AND "timestamp" >= ?`, userID, entities.RoleUser, time.Now().Add(-time.Minute)).
		Count(&recent).Error; err != nil {
		return respondError(c, err)
	}
	rateDuration := time.Since(start)

	return c.JSON(fiber.Map{
		"shifts_week": fiber.Map{
			"duration_ms": shiftDuration.Milliseconds(),
			"rows":        shifts,
		},
		"recent_sleep_logs": fiber.Map{
			"duration_ms": logDuration.Milliseconds(),
			"rows":        len(logs),
		},
		"chat_rate_window": fiber.Map{
			"duration_ms": rateDuration.Milliseconds(),
			"rows":        recent,
		},
	})
}
