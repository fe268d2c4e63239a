package middleware

import (
	"fmt"
	"log"
	"os"
	"strings"

	"hazel-brief-backend/internal/models"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userLocalKey = "currentUser"

// RequireAuth validates the bearer token issued by the external identity
// provider and resolves it to a user row, creating one with the default
// customer role the first time an identity shows up. Authentication itself
// is entirely the provider's job; we only verify the shared-secret signature
// and read sub/email.
func RequireAuth(users repo.UserRepoInterface) fiber.Handler {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		// fail closed: an empty secret would verify attacker-forged tokens
		log.Println("Warning: AUTH_JWT_SECRET not set; rejecting all requests")
		return func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Missing AUTH_JWT_SECRET in env",
			})
		}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		email, _ := claims["email"].(string)
		if email == "" {
			// some providers only put the address in sub
			email, _ = claims["sub"].(string)
		}
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token has no email claim",
			})
		}

		user, err := users.GetOrCreateByEmail(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve user",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RequireRoles gates a route on the caller's role. One decision point,
// evaluated on every request to a gated route.
func RequireRoles(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role",
		})
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
