package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"hazel-brief-backend/internal/hazel/gateway"
	"hazel-brief-backend/internal/models"

	"github.com/google/uuid"
)

// Greeting is the seeded first assistant message of every session.
const Greeting = "Hey I'm Hazel👋, Haze's virtual assistant. Tell me about your company and what this merch is for."

var (
	ErrInterviewDone = errors.New("interview is already done")
	ErrTurnInFlight  = errors.New("a turn is already in flight")
	ErrEmptyMessage  = errors.New("Message cannot be empty")
)

// Session is the interview state machine. All state lives here, owned by the
// store and handed to handlers by id; nothing is module-global. The greeting
// is part of construction, so the answer map always has an assistant question
// to key on from the first reply.
type Session struct {
	ID             uuid.UUID
	CompanyName    string
	Turn           int
	AskedQuestions []string
	Answers        map[string]string
	Messages       []models.ChatMessage
	Done           bool
	Brief          *models.Brief

	mu       sync.Mutex
	inFlight bool
}

func NewSession() *Session {
	return &Session{
		ID:             uuid.New(),
		AskedQuestions: []string{},
		Answers:        map[string]string{},
		Messages: []models.ChatMessage{
			{Role: models.RoleAssistant, Text: Greeting},
		},
	}
}

// Snapshot is a copy-out of the visible session state for rendering.
type Snapshot struct {
	ID          uuid.UUID            `json:"session_id"`
	CompanyName string               `json:"company_name,omitempty"`
	Turn        int                  `json:"turn"`
	Done        bool                 `json:"done"`
	Messages    []models.ChatMessage `json:"messages"`
	Brief       *models.Brief        `json:"brief,omitempty"`
}

func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]models.ChatMessage, len(s.Messages))
	copy(msgs, s.Messages)

	return &Snapshot{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		Turn:        s.Turn,
		Done:        s.Done,
		Messages:    msgs,
		Brief:       s.Brief,
	}
}

// SubmitAnswer runs one interview turn. The turn is consumed the moment the
// user text is accepted: a gateway failure leaves the incremented turn, the
// recorded answer and the user message in place, appends a visible error to
// the transcript and re-enables input. Retries are the user's resend.
func (s *Session) SubmitAnswer(ctx context.Context, gw gateway.Gateway, userText string) (*gateway.TurnResult, error) {
	s.mu.Lock()

	if s.Done {
		s.mu.Unlock()
		return nil, ErrInterviewDone
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrTurnInFlight
	}

	text := strings.TrimSpace(userText)
	if text == "" {
		s.mu.Unlock()
		return nil, ErrEmptyMessage
	}

	s.Turn++

	// capture company name once; the first match is permanent
	if s.CompanyName == "" {
		if name := ExtractCompanyNameSoft(text); name != "" {
			s.CompanyName = name
		}
	}

	// the reply answers the most recent assistant question, exact string as
	// the key; a repeated question overwrites the earlier reply
	s.Answers[s.lastAssistantQuestion()] = text

	// request snapshot is taken before appending the user message, matching
	// the transcript the original sent upstream
	req := &gateway.TurnRequest{
		Messages:       toLLMMessages(s.Messages),
		Answers:        copyAnswers(s.Answers),
		Turn:           s.Turn,
		AskedQuestions: append([]string{}, s.AskedQuestions...),
	}

	s.Messages = append(s.Messages, models.ChatMessage{Role: models.RoleUser, Text: text})
	s.inFlight = true
	s.mu.Unlock()

	res, err := gw.NextTurn(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.Messages = append(s.Messages, models.ChatMessage{
			Role: models.RoleAssistant,
			Text: fmt.Sprintf("Something broke: %v", err),
		})
		return nil, err
	}

	if res.Done {
		s.Done = true
		s.Brief = res.Brief
		s.Messages = append(s.Messages, models.ChatMessage{
			Role: models.RoleAssistant,
			Text: "Done. Here is the brief.",
		})
		return res, nil
	}

	s.AskedQuestions = append(s.AskedQuestions, res.Question)
	s.Messages = append(s.Messages, models.ChatMessage{Role: models.RoleAssistant, Text: res.Question})
	return res, nil
}

func (s *Session) lastAssistantQuestion() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == models.RoleAssistant {
			return s.Messages[i].Text
		}
	}
	return fmt.Sprintf("q%d", s.Turn)
}

func copyAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
