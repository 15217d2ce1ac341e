package fundora

import (
	"fmt"
	"strings"
)

// Persona is the name of an investor persona, the output of a classification.
type Persona string

// Personas produced by the banded quiz. They are the rows of the default
// allocation matrix.
const (
	Guardian Persona = "The Guardian"
	Planner  Persona = "The Planner"
	Explorer Persona = "The Explorer"
	Hustler  Persona = "The Hustler"
	Maverick Persona = "The Maverick"
)

// Personas produced by the weighted quiz. They double as risk levels.
const (
	Conservative Persona = "Conservative"
	Balanced     Persona = "Balanced"
	Aggressive   Persona = "Aggressive"
)

var knownPersonas = []Persona{Guardian, Planner, Explorer, Hustler, Maverick, Conservative, Balanced, Aggressive}

// ParsePersona parses a persona name, case insensitive, with or without its
// leading "The": "guardian" is The Guardian.
func ParsePersona(s string) (Persona, error) {
	s = strings.TrimSpace(s)
	for _, p := range knownPersonas {
		if strings.EqualFold(s, string(p)) || strings.EqualFold("The "+s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPersona, s)
}

// Risk is the coarse risk appetite of a persona.
type Risk int

const (
	RiskBalanced Risk = iota
	RiskConservative
	RiskAggressive
)

func (r Risk) String() string {
	switch r {
	case RiskConservative:
		return "Conservative"
	case RiskAggressive:
		return "Aggressive"
	default:
		return "Balanced"
	}
}

// Risk returns the risk level of the persona. Unknown personas are balanced,
// which is how the advice layer treats an unclassified user.
func (p Persona) Risk() Risk {
	switch p {
	case Guardian, Planner, Conservative:
		return RiskConservative
	case Hustler, Maverick, Aggressive:
		return RiskAggressive
	default:
		return RiskBalanced
	}
}

// PersonaResult is the outcome of a classification. It is derived from the
// answers every time, never stored.
type PersonaResult struct {
	Score       int     `json:"total_score"`
	Persona     Persona `json:"persona"`
	Description string  `json:"description"`
	Advice      string  `json:"advice"`
}

// Band is an inclusive score range of the banded quiz.
type Band struct {
	Min, Max    int
	Persona     Persona
	Description string
	Advice      string
}

// Contains reports whether score falls into the band, bounds included.
func (b Band) Contains(score int) bool { return score >= b.Min && score <= b.Max }

func (b Band) result(score int) PersonaResult {
	return PersonaResult{Score: score, Persona: b.Persona, Description: b.Description, Advice: b.Advice}
}

func (b Band) String() string { return fmt.Sprintf("%d-%d %s", b.Min, b.Max, b.Persona) }
