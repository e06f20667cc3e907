package middleware

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/auth"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
)

// LocalUserID é a chave do id do usuário autenticado em c.Locals
const LocalUserID = "user_id"

// Auth exige um Bearer token válido e guarda o id do usuário na requisição
func Auth(verifier auth.Verifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		token, ok := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "User not authenticated")
		}

		identity, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			log.Debug("token rejected", "path", c.Path(), "error", err)
			return unauthorized(c, "Invalid or expired access token")
		}

		c.Locals(LocalUserID, identity.UserID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":     message,
		"code":      "UNAUTHORIZED",
		"retryable": false,
	})
}

// UserID retorna o usuário autenticado, ou "" fora das rotas protegidas
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(LocalUserID).(string)
	return userID
}
