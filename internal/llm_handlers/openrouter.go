package llmHandlers

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterModel   = "openai/gpt-4o-mini"
)

// OpenRouterClient implements Client against OpenRouter's OpenAI-compatible
// chat completion endpoint. Responses are requested as strict JSON.
type OpenRouterClient struct {
	llm llms.Model

	Temperature float64
}

// attributionTransport adds the OpenRouter attribution headers to every
// outbound request.
type attributionTransport struct {
	base    http.RoundTripper
	siteURL string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.siteURL)
	req.Header.Set("X-Title", "Merch Brief Assistant")
	return t.base.RoundTrip(req)
}

func NewOpenRouterClient() (*OpenRouterClient, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("Missing OPENROUTER_API_KEY in env")
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}

	httpClient := &http.Client{
		Transport: &attributionTransport{
			base:    http.DefaultTransport,
			siteURL: siteURL,
		},
	}

	llm, err := openai.New(
		openai.WithModel(openRouterModel),
		openai.WithBaseURL(openRouterBaseURL),
		openai.WithToken(apiKey),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create openrouter client: %w", err)
	}

	return &OpenRouterClient{llm: llm, Temperature: 0.6}, nil
}

func (c *OpenRouterClient) Chat(ctx context.Context, systemMessage string, messages []Message) (string, error) {
	msgContents := make([]llms.MessageContent, 0, len(messages)+1)
	if systemMessage != "" {
		msgContents = append(msgContents, llms.TextParts(llms.ChatMessageTypeSystem, systemMessage))
	}
	for _, m := range messages {
		var msgType llms.ChatMessageType
		switch m.Role {
		case RoleSystem:
			msgType = llms.ChatMessageTypeSystem
		case RoleAssistant:
			msgType = llms.ChatMessageTypeAI
		default:
			msgType = llms.ChatMessageTypeHuman
		}
		msgContents = append(msgContents, llms.TextParts(msgType, m.Content))
	}

	resp, err := c.llm.GenerateContent(ctx, msgContents,
		llms.WithTemperature(c.Temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from LLM")
	}

	return resp.Choices[0].Content, nil
}
