package v1

import (
	"hazel-brief-backend/internal/api/middleware"
	"hazel-brief-backend/internal/config"
	"hazel-brief-backend/internal/handlers"
	"hazel-brief-backend/internal/models"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerBriefs(r fiber.Router) {
	userRepo := repo.NewUserRepository(config.DB)
	briefRepo := repo.NewBriefRepository(config.DB)
	briefHandler := handlers.NewBriefHandler(briefRepo)

	auth := middleware.RequireAuth(userRepo)
	pool := middleware.RequireRoles(models.UserRoleDesigner, models.UserRoleAdmin)

	r.Get("/briefs", auth, pool, briefHandler.GetBriefs)
	r.Get("/briefs/:briefId", auth, pool, briefHandler.GetBriefByID)
	r.Post("/briefs/:briefId/accept", auth, pool, briefHandler.AcceptBrief)
}
