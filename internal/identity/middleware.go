package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

const ContextUserKey = "current_user"

// Middleware проверяет bearer-токен и кладет пользователя в контекст.
// Запросы без зарегистрированного пользователя отклоняются: запись
// создается отдельным bootstrap-роутом без этого middleware.
func Middleware(verifier *Verifier, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing or invalid Authorization header"})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing or invalid Authorization header"})
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing or invalid Authorization header"})
			}

			claims, err := verifier.VerifyIDToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "Invalid or expired idToken",
					"details": err.Error(),
				})
			}

			user, err := users.GetByUID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext извлекает текущего пользователя из контекста.
func UserFromContext(c echo.Context) (models.User, bool) {
	value := c.Get(ContextUserKey)
	user, ok := value.(models.User)
	return user, ok
}
