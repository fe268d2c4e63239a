package v1

import (
	"context"
	"log"
	"os"

	"hazel-brief-backend/internal/api/middleware"
	"hazel-brief-backend/internal/config"
	"hazel-brief-backend/internal/handlers"
	"hazel-brief-backend/internal/hazel/gateway"
	"hazel-brief-backend/internal/hazel/interview"
	"hazel-brief-backend/internal/libraries"
	llmHandlers "hazel-brief-backend/internal/llm_handlers"
	"hazel-brief-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

var sessions *interview.SessionStore

func init() {
	// one in-memory session store for the process
	sessions = interview.NewSessionStore()
}

// registerInterview wires the interview turn protocol. Any signed-in role may
// run an interview; the home view is also the wrong-role landing spot.
func registerInterview(r fiber.Router) {
	llmClient, err := llmHandlers.NewLLMClient(os.Getenv("LLM_PROVIDER"))
	if err != nil {
		// the server still starts; every turn then fails with a 500 until
		// credentials are provided
		log.Printf("Warning: LLM client unavailable: %v", err)
	}
	gw := gateway.NewLLMGateway(llmClient)

	archive, err := libraries.NewBriefArchive(context.Background())
	if err != nil {
		log.Printf("Warning: brief archive disabled: %v", err)
	}

	userRepo := repo.NewUserRepository(config.DB)
	briefRepo := repo.NewBriefRepository(config.DB)
	interviewHandler := handlers.NewInterviewHandler(sessions, gw, briefRepo, archive)

	auth := middleware.RequireAuth(userRepo)

	r.Get("/me", auth, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(middleware.CurrentUser(c))
	})

	r.Post("/interview/sessions", auth, interviewHandler.CreateSession)
	r.Get("/interview/sessions/:sessionId", auth, interviewHandler.GetSession)
	r.Post("/interview/sessions/:sessionId/messages", auth, interviewHandler.SubmitMessage)
}
