package renderer

import "github.com/etnz/fundora"

// Persona is the outcome of the quiz, ready for display.
type Persona struct {
	// Name greets the user, it can be empty.
	Name        string `json:"name,omitempty"`
	Score       int    `json:"score"`
	MaxScore    int    `json:"maxScore"`
	Persona     string `json:"persona"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
	Risk        string `json:"risk"`
}

// NewPersona creates a Persona from a classification.
func NewPersona(r fundora.PersonaResult, name string, maxScore int) *Persona {
	return &Persona{
		Name:        name,
		Score:       r.Score,
		MaxScore:    maxScore,
		Persona:     string(r.Persona),
		Description: r.Description,
		Advice:      r.Advice,
		Risk:        r.Persona.Risk().String(),
	}
}
