package middleware

import (
	"strings"

	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupMiddlewares registra recover, request id, CORS e o log de requisições
func SetupMiddlewares(app *fiber.App, origins []string, log *logger.Logger) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered", "method", c.Method(), "path", c.Path(), "panic", e)
		},
	}))

	app.Use(requestid.New())

	allowOrigins := strings.Join(origins, ", ")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// credenciais não podem ser combinadas com "*"
		AllowCredentials: allowOrigins != "*",
		MaxAge:           300,
	}))

	app.Use(RequestLogger(log))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public        fiber.Router
	Authenticated fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	// Grupo da API do usuário (com autenticação)
	authenticated := app.Group("/api/v1", authMiddleware)

	return RouteGroups{
		Public:        public,
		Authenticated: authenticated,
	}
}
