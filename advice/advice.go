// Package advice answers the investment questions of a classified user.
//
// Two advisors are provided: Gemini, backed by a Gemini chat, and Fallback, a
// set of canned answers driven by keywords and amounts found in the query.
// Gemini answers from the Fallback whenever the model cannot be reached.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/fundora"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Apology is the answer given when no advisor could produce one.
const Apology = "I'm sorry, I'm having trouble processing your request right now. Please try again."

// Request is a question asked to an advisor.
type Request struct {
	// Prompt is the full prompt sent to a model, see Prompt.
	Prompt string
	// Query is the question as typed by the user.
	Query   string
	Persona fundora.Persona
	// Name is used to greet the user and to keep one conversation per user.
	Name string
}

// NewRequest builds the request of user u asking query.
func NewRequest(u *fundora.User, query string) Request {
	return Request{
		Prompt:  Prompt(u, query),
		Query:   query,
		Persona: u.Persona,
		Name:    u.Name(),
	}
}

// Advisor answers a request.
type Advisor interface {
	Advise(ctx context.Context, req Request) (string, error)
}

// Prompt returns the prompt describing the user's profile around query.
func Prompt(u *fundora.User, query string) string {
	return fmt.Sprintf(`User Profile: %[1]s Investor
Email: %[2]s

User Query: %[3]q

Context: This user has completed onboarding and been classified as %[1]s investor based on their risk tolerance, investment timeline, and financial goals.

Please provide specific investment advice tailored to their profile and the exact query.`, u.Persona, u.Email, query)
}

// SystemInstruction returns the instruction given to a model advising
// persona p.
func SystemInstruction(p fundora.Persona) string {
	profile := string(p)
	if profile == "" {
		profile = string(fundora.Balanced)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are Fundora, a helpful financial AI assistant for Indian users. The user's investor profile is %s (%s risk).\n\n", profile, p.Risk())
	b.WriteString(`Guidelines:
- Provide specific, practical investment advice based on exact amounts mentioned
- Keep responses conversational and under 100 words
- Always consider the specific investment amount, timeline, and risk profile
- Focus on Indian investment options: SIP, FD, PPF, ELSS, mutual funds, stocks, etc.
- Give specific fund names and allocation percentages when relevant
- Consider current Indian market conditions and tax implications
`)
	fmt.Fprintf(&b, "\nFor %s investors:\n%s\n", p.Risk(), guidelines(p.Risk()))
	b.WriteString("\nAlways provide actionable, specific advice with exact amounts and percentages.")
	return b.String()
}

func guidelines(r fundora.Risk) string {
	switch r {
	case fundora.RiskConservative:
		return `- Prioritize capital preservation and guaranteed returns
- Suggest 60-70% in FD/PPF/Debt funds, 30-40% in large-cap equity
- Focus on tax-saving instruments like PPF and ELSS
- Recommend shorter lock-in periods and liquid investments`
	case fundora.RiskAggressive:
		return `- Focus on wealth creation and high growth potential
- Suggest 70-80% in equity (mix of large, mid, small-cap), 20-30% in debt
- Recommend direct equity, sectoral funds, and international exposure
- Consider longer investment horizons (5+ years)`
	default:
		return `- Balance between growth and stability
- Suggest 60% equity, 40% debt allocation
- Mix of large-cap stability with mid-cap growth
- Diversify across asset classes including gold/international`
	}
}

// Config selects and configures an advisor.
type Config struct {
	// APIKey is the Gemini API key. Without one, the Fallback is used.
	APIKey string
	// Model defaults to DefaultModel.
	Model  string
	Logger zerolog.Logger
}

// New returns a Gemini advisor if an API key is configured, or the Fallback.
func New(ctx context.Context, cfg Config) (Advisor, error) {
	if cfg.APIKey == "" {
		cfg.Logger.Debug().Msg("no Gemini API key, using canned answers")
		return Fallback{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return NewGemini(client, cfg), nil
}
