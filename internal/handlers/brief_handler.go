package handlers

import (
	"errors"
	"log"

	"hazel-brief-backend/internal/api/middleware"
	"hazel-brief-backend/internal/models"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// for simple crud operations service layer is not required
type BriefHandler struct {
	repo repo.BriefRepoInterface
}

func NewBriefHandler(repo repo.BriefRepoInterface) *BriefHandler {
	return &BriefHandler{repo: repo}
}

// GetBriefs lists the pool: open briefs unless another status is asked for.
func (h *BriefHandler) GetBriefs(c *fiber.Ctx) error {
	status := models.BriefStatus(c.Query("status", string(models.BriefStatusOpen)))
	if status != models.BriefStatusOpen && status != models.BriefStatusAssigned {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	briefs, err := h.repo.GetBriefsByStatus(status)
	if err != nil {
		log.Println(err, "Error getting briefs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get briefs",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"briefs": briefs,
		"total":  len(briefs),
	})
}

func (h *BriefHandler) GetBriefByID(c *fiber.Ctx) error {
	briefID, err := uuid.Parse(c.Params("briefId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid brief ID",
		})
	}

	brief, err := h.repo.GetBriefByID(briefID)
	if err != nil {
		if errors.Is(err, repo.ErrBriefNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Println(err, "Error getting brief")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get brief",
		})
	}

	return c.Status(fiber.StatusOK).JSON(brief)
}

// AcceptBrief claims an open brief for the calling designer. First come,
// first served; a loser gets the AlreadyAssigned message and no write.
func (h *BriefHandler) AcceptBrief(c *fiber.Ctx) error {
	briefID, err := uuid.Parse(c.Params("briefId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid brief ID",
		})
	}

	user := middleware.CurrentUser(c)

	brief, err := h.repo.AcceptBrief(briefID, user.UUID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrBriefNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repo.ErrAlreadyAssigned):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Println(err, "Error accepting brief")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to accept brief",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(brief)
}
