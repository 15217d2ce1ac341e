package advice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/etnz/fundora"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const (
	maxOutputTokens = 150
	temperature     = 0.7
)

// sender is the part of a genai.Chat the advisor uses.
type sender interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini advises through a Gemini chat. Each user and persona pair gets its
// own chat, so a conversation keeps its history. Any failure to get an
// answer is logged and answered by the Fallback.
//
// Gemini is safe for concurrent use.
type Gemini struct {
	log      zerolog.Logger
	fallback Fallback
	newChat  func(ctx context.Context, config *genai.GenerateContentConfig) (sender, error)

	mu    sync.Mutex
	chats map[string]sender
}

// NewGemini returns an advisor chatting with client.
func NewGemini(client *genai.Client, cfg Config) *Gemini {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return newGemini(cfg.Logger, func(ctx context.Context, config *genai.GenerateContentConfig) (sender, error) {
		return client.Chats.Create(ctx, model, config, nil)
	})
}

func newGemini(log zerolog.Logger, newChat func(context.Context, *genai.GenerateContentConfig) (sender, error)) *Gemini {
	return &Gemini{
		log:     log.With().Str("advisor", "gemini").Logger(),
		newChat: newChat,
		chats:   make(map[string]sender),
	}
}

// chat returns the chat of the request's user, creating it on first use.
func (g *Gemini) chat(ctx context.Context, req Request) (sender, error) {
	key := req.Name + "\x00" + string(req.Persona)
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.chats[key]; ok {
		return c, nil
	}
	c, err := g.newChat(ctx, generateConfig(req.Persona))
	if err != nil {
		return nil, err
	}
	g.chats[key] = c
	return c, nil
}

func generateConfig(p fundora.Persona) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens:   maxOutputTokens,
		Temperature:       genai.Ptr[float32](temperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SystemInstruction(p)}}},
	}
}

// ask sends the prompt and returns the text of the first candidate.
func (g *Gemini) ask(ctx context.Context, req Request) (string, error) {
	c, err := g.chat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("cannot start chat: %w", err)
	}
	prompt := req.Prompt
	if prompt == "" {
		prompt = req.Query
	}
	resp, err := c.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

// Advise asks Gemini, falling back to canned answers on any error. The
// context's cancellation is the only error returned.
func (g *Gemini) Advise(ctx context.Context, req Request) (string, error) {
	text, err := g.ask(ctx, req)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	g.log.Warn().Err(err).Str("persona", string(req.Persona)).Msg("Gemini failed, answering from canned responses")
	return g.fallback.Advise(ctx, req)
}
