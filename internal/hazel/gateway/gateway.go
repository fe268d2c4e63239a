package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"hazel-brief-backend/internal/hazel/prompts"
	llmHandlers "hazel-brief-backend/internal/llm_handlers"
	"hazel-brief-backend/internal/models"
)

// MaxTurns is the hard ceiling on interview turns. Reaching it only switches
// the steering instruction to the forced-done wording; the provider is asked,
// not made, to conclude. There is no client-side fallback brief.
const MaxTurns = 10

var (
	ErrMissingCredential = errors.New("Missing OPENROUTER_API_KEY in env")
	ErrUpstream          = errors.New("OpenRouter request failed")
	ErrBadLLMOutput      = errors.New("LLM did not return valid JSON")
)

// TurnRequest carries everything one interview turn sends upstream.
type TurnRequest struct {
	Messages       []llmHandlers.Message
	Answers        map[string]string
	Turn           int
	AskedQuestions []string
}

// TurnResult is the provider's verdict: the next question, or the brief.
type TurnResult struct {
	Done     bool          `json:"done"`
	Question string        `json:"question,omitempty"`
	Brief    *models.Brief `json:"brief,omitempty"`
}

type Gateway interface {
	NextTurn(ctx context.Context, req *TurnRequest) (*TurnResult, error)
}

type LLMGateway struct {
	client llmHandlers.Client
}

// NewLLMGateway wraps a provider client. A nil client is allowed so the
// server can start without credentials; every turn then fails uniformly
// with ErrMissingCredential.
func NewLLMGateway(client llmHandlers.Client) *LLMGateway {
	return &LLMGateway{client: client}
}

// BuildPromptContext assembles the non-system portion of the prompt: known
// answers and asked questions as a serialized context message, then the full
// transcript, then the steering instruction (forced once turn >= MaxTurns).
func BuildPromptContext(req *TurnRequest) []llmHandlers.Message {
	answers := req.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	asked := req.AskedQuestions
	if asked == nil {
		asked = []string{}
	}

	answersJSON, _ := json.MarshalIndent(answers, "", "  ")
	askedJSON, _ := json.MarshalIndent(asked, "", "  ")

	instruction := prompts.NEXT_TURN_INSTRUCTION
	if req.Turn >= MaxTurns {
		instruction = prompts.FORCED_DONE_INSTRUCTION
	}

	msgs := make([]llmHandlers.Message, 0, len(req.Messages)+2)
	msgs = append(msgs, llmHandlers.Message{
		Role: llmHandlers.RoleUser,
		Content: "Known answers so far (JSON):\n" + string(answersJSON) +
			"\n\nQuestions already asked (exact strings):\n" + string(askedJSON),
	})
	msgs = append(msgs, req.Messages...)
	msgs = append(msgs, llmHandlers.Message{
		Role:    llmHandlers.RoleUser,
		Content: instruction,
	})
	return msgs
}

// ParseTurnResult interprets raw provider output as a turn verdict. Anything
// that is not valid JSON with either a question or a brief is rejected as-is;
// no repair is attempted.
func ParseTurnResult(content string) (*TurnResult, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty LLM content", ErrBadLLMOutput)
	}

	var out TurnResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadLLMOutput, truncate(content, 140))
	}

	if out.Done && out.Brief == nil {
		return nil, fmt.Errorf("%w: done without brief", ErrBadLLMOutput)
	}
	if !out.Done && out.Question == "" {
		return nil, fmt.Errorf("%w: missing question", ErrBadLLMOutput)
	}

	return &out, nil
}

func (g *LLMGateway) NextTurn(ctx context.Context, req *TurnRequest) (*TurnResult, error) {
	if g.client == nil {
		return nil, ErrMissingCredential
	}

	forcedDone := req.Turn >= MaxTurns
	log.Printf("[llm-next] turn: %d / %d forcedDone: %v", req.Turn, MaxTurns, forcedDone)

	content, err := g.client.Chat(ctx, prompts.INTAKE_PROMPT, BuildPromptContext(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out, err := ParseTurnResult(content)
	if err != nil {
		return nil, err
	}

	if out.Done {
		log.Printf("[llm-next] interview completed turn=%d forcedDone=%v", req.Turn, forcedDone)
	}

	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
