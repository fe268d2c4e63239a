package gateway

import (
	"context"
	"errors"
	"testing"

	"hazel-brief-backend/internal/hazel/prompts"
	llmHandlers "hazel-brief-backend/internal/llm_handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	system   string
	messages []llmHandlers.Message
	content  string
	err      error
}

func (f *fakeClient) Chat(_ context.Context, systemMessage string, messages []llmHandlers.Message) (string, error) {
	f.system = systemMessage
	f.messages = messages
	return f.content, f.err
}

func turnRequest(turn int) *TurnRequest {
	return &TurnRequest{
		Messages: []llmHandlers.Message{
			{Role: llmHandlers.RoleAssistant, Content: "Tell me about your company."},
			{Role: llmHandlers.RoleUser, Content: "We are Breadbox."},
		},
		Answers:        map[string]string{"Tell me about your company.": "We are Breadbox."},
		Turn:           turn,
		AskedQuestions: []string{"Tell me about your company."},
	}
}

func TestBuildPromptContextShape(t *testing.T) {
	msgs := BuildPromptContext(turnRequest(3))

	// context message, transcript, steering instruction
	require.Len(t, msgs, 4)

	first := msgs[0]
	assert.Equal(t, llmHandlers.RoleUser, first.Role)
	assert.Contains(t, first.Content, "Known answers so far (JSON):")
	assert.Contains(t, first.Content, "Questions already asked (exact strings):")
	assert.Contains(t, first.Content, "We are Breadbox.")

	assert.Equal(t, "Tell me about your company.", msgs[1].Content)
	assert.Equal(t, "We are Breadbox.", msgs[2].Content)

	last := msgs[len(msgs)-1]
	assert.Equal(t, llmHandlers.RoleUser, last.Role)
	assert.Equal(t, prompts.NEXT_TURN_INSTRUCTION, last.Content)
}

func TestBuildPromptContextForcedConclusion(t *testing.T) {
	// below the ceiling the forcing directive must be absent
	msgs := BuildPromptContext(turnRequest(9))
	for _, m := range msgs {
		assert.NotEqual(t, prompts.FORCED_DONE_INSTRUCTION, m.Content)
	}

	// at the ceiling it must be the final instruction
	msgs = BuildPromptContext(turnRequest(10))
	assert.Equal(t, prompts.FORCED_DONE_INSTRUCTION, msgs[len(msgs)-1].Content)

	// and beyond it
	msgs = BuildPromptContext(turnRequest(11))
	assert.Equal(t, prompts.FORCED_DONE_INSTRUCTION, msgs[len(msgs)-1].Content)
}

func TestParseTurnResult(t *testing.T) {
	t.Run("next question", func(t *testing.T) {
		out, err := ParseTurnResult(`{"done": false, "question": "What colors feel like you?"}`)
		require.NoError(t, err)
		assert.False(t, out.Done)
		assert.Equal(t, "What colors feel like you?", out.Question)
	})

	t.Run("finished with brief", func(t *testing.T) {
		out, err := ParseTurnResult(`{
			"done": true,
			"brief": {
				"summary": "Minimal premium merch for Breadbox.",
				"core_design_direction": ["minimal", "warm"],
				"visual_language": ["soft geometry"],
				"color_and_typography": ["cream and rust"],
				"product_specific_notes": {"tee": ["heavyweight"], "team_jacket": [], "founder_wear": []},
				"dos": ["keep it quiet"],
				"donts": ["no gradients"],
				"closing_to_customer": "Thanks!"
			}
		}`)
		require.NoError(t, err)
		assert.True(t, out.Done)
		require.NotNil(t, out.Brief)
		assert.Equal(t, "Minimal premium merch for Breadbox.", out.Brief.Summary)
		assert.Equal(t, []string{"minimal", "warm"}, []string(out.Brief.CoreDesignDirection))
		assert.Equal(t, []string{"heavyweight"}, out.Brief.ProductSpecificNotes.Data().Tee)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := ParseTurnResult("")
		assert.ErrorIs(t, err, ErrBadLLMOutput)
	})

	t.Run("non-json", func(t *testing.T) {
		_, err := ParseTurnResult("Sure! Here is your question: ...")
		assert.ErrorIs(t, err, ErrBadLLMOutput)
	})

	t.Run("done without brief", func(t *testing.T) {
		_, err := ParseTurnResult(`{"done": true}`)
		assert.ErrorIs(t, err, ErrBadLLMOutput)
	})

	t.Run("not done without question", func(t *testing.T) {
		_, err := ParseTurnResult(`{"done": false}`)
		assert.ErrorIs(t, err, ErrBadLLMOutput)
	})
}

func TestNextTurn(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		gw := NewLLMGateway(nil)
		_, err := gw.NextTurn(context.Background(), turnRequest(1))
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("sends intake prompt as system message", func(t *testing.T) {
		client := &fakeClient{content: `{"done": false, "question": "Next?"}`}
		gw := NewLLMGateway(client)

		out, err := gw.NextTurn(context.Background(), turnRequest(2))
		require.NoError(t, err)
		assert.False(t, out.Done)
		assert.Equal(t, prompts.INTAKE_PROMPT, client.system)
		assert.Equal(t, prompts.NEXT_TURN_INSTRUCTION, client.messages[len(client.messages)-1].Content)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client := &fakeClient{err: errors.New("bad gateway")}
		gw := NewLLMGateway(client)

		_, err := gw.NextTurn(context.Background(), turnRequest(2))
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("format failure surfaces verbatim", func(t *testing.T) {
		client := &fakeClient{content: "not json at all"}
		gw := NewLLMGateway(client)

		_, err := gw.NextTurn(context.Background(), turnRequest(2))
		assert.ErrorIs(t, err, ErrBadLLMOutput)
		assert.Contains(t, err.Error(), "not json at all")
	})
}
