package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"hazel-brief-backend/internal/api/middleware"
	"hazel-brief-backend/internal/hazel/gateway"
	"hazel-brief-backend/internal/hazel/interview"
	"hazel-brief-backend/internal/libraries"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	sessions  *interview.SessionStore
	gw        gateway.Gateway
	briefRepo repo.BriefRepoInterface
	archive   *libraries.BriefArchive
}

func NewInterviewHandler(sessions *interview.SessionStore, gw gateway.Gateway, briefRepo repo.BriefRepoInterface, archive *libraries.BriefArchive) *InterviewHandler {
	return &InterviewHandler{
		sessions:  sessions,
		gw:        gw,
		briefRepo: briefRepo,
		archive:   archive,
	}
}

// CreateSession starts a fresh interview and returns the seeded greeting.
func (h *InterviewHandler) CreateSession(c *fiber.Ctx) error {
	sess := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": sess.ID.String(),
		"message":    interview.Greeting,
	})
}

// GetSession returns the render state of a session.
func (h *InterviewHandler) GetSession(c *fiber.Ctx) error {
	sess, ok := h.sessions.Get(c.Params("sessionId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(sess.Snapshot())
}

// SubmitMessage runs one interview turn. On the terminal turn the brief is
// persisted open in the pool before the response goes out.
func (h *InterviewHandler) SubmitMessage(c *fiber.Ctx) error {
	sess, ok := h.sessions.Get(c.Params("sessionId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	var dto struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	res, err := sess.SubmitAnswer(c.Context(), h.gw, dto.Message)
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": interview.ErrEmptyMessage.Error(),
			})
		case errors.Is(err, interview.ErrInterviewDone), errors.Is(err, interview.ErrTurnInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			// credential, transport and format failures all surface as a
			// status-coded error string; the turn stays consumed
			log.Printf("Error processing turn: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	if !res.Done {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"done":     false,
			"question": res.Question,
		})
	}

	brief := res.Brief
	if user := middleware.CurrentUser(c); user != nil {
		brief.CustomerEmail = user.Email
	}

	if _, err := h.briefRepo.CreateBrief(brief); err != nil {
		// the session only lives in memory until it expires, so this log line
		// is the last durable copy of the document; dump it whole
		if payload, mErr := json.Marshal(brief); mErr == nil {
			log.Printf("Error storing brief: %v; unsaved brief: %s", err, payload)
		} else {
			log.Printf("Error storing brief: %v; brief not serializable: %v", err, mErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store brief",
		})
	}

	if err := h.archive.Export(c.Context(), brief); err != nil {
		log.Println(err, "Error archiving brief")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"done":  true,
		"brief": brief,
	})
}
