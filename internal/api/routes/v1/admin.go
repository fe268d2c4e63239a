package v1

import (
	"hazel-brief-backend/internal/api/middleware"
	"hazel-brief-backend/internal/config"
	"hazel-brief-backend/internal/handlers"
	"hazel-brief-backend/internal/models"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerAdmin(r fiber.Router) {
	userRepo := repo.NewUserRepository(config.DB)
	adminHandler := handlers.NewAdminHandler(userRepo)

	auth := middleware.RequireAuth(userRepo)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	r.Get("/admin/users", auth, adminOnly, adminHandler.GetAllUsers)
	r.Post("/admin/users/:userId/promote", auth, adminOnly, adminHandler.PromoteUser)
}
