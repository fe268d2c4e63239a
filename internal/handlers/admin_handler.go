package handlers

import (
	"errors"
	"log"

	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	userRepo repo.UserRepoInterface
}

func NewAdminHandler(userRepo repo.UserRepoInterface) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

func (h *AdminHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.GetAllUsers()
	if err != nil {
		log.Println(err, "Error getting users")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get users",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// PromoteUser moves a customer to designer. Idempotent: promoting someone
// who is already a designer just returns the current row.
func (h *AdminHandler) PromoteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := h.userRepo.PromoteToDesigner(userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Println(err, "Error promoting user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to promote user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
