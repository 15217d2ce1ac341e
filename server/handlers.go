package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/advice"
	"github.com/shopspring/decimal"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "fundora",
	})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.quiz.Questions())
}

func (s *Server) handleLegacyQuestions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.legacy.Questions())
}

// PersonaRequest holds the answers to one of the quizzes: letters for the
// banded quiz, option indices for the weighted one.
type PersonaRequest struct {
	Answers string `json:"answers,omitempty"`
	Indices []int  `json:"indices,omitempty"`
}

func (s *Server) handlePersona(w http.ResponseWriter, r *http.Request) {
	var req PersonaRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	var (
		res fundora.PersonaResult
		err error
	)
	switch {
	case req.Answers != "" && req.Indices != nil:
		err = fmt.Errorf("%w: answers and indices are exclusive", fundora.ErrInvalidInput)
	case req.Indices != nil:
		res, err = s.legacy.Classify(req.Indices)
	default:
		res, err = s.quiz.ClassifyLetters(req.Answers)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// AllocationRequest asks for the plan of a persona.
type AllocationRequest struct {
	Persona   string          `json:"persona"`
	Principal decimal.Decimal `json:"principal"`
	// Years defaults to fundora.DefaultYears.
	Years int `json:"years,omitempty"`
}

func (s *Server) handleAllocation(w http.ResponseWriter, r *http.Request) {
	var req AllocationRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	persona, err := fundora.ParsePersona(req.Persona)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if req.Years == 0 {
		req.Years = fundora.DefaultYears
	}
	plan, err := s.engine.Plan(persona, fundora.M(req.Principal, s.engine.Currency()), req.Years)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("category")
	if name == "" {
		s.writeJSON(w, http.StatusOK, s.catalog.All())
		return
	}
	c, err := fundora.ParseCategory(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.catalog.Products(c))
}

// AdviceRequest is a question asked to the advisor on behalf of a user.
type AdviceRequest struct {
	Prompt  string `json:"prompt"`
	Persona string `json:"persona,omitempty"`
	Email   string `json:"email,omitempty"`
}

// AdviceResponse is the advisor's answer.
type AdviceResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		s.writeError(w, fmt.Errorf("%w: empty prompt", fundora.ErrInvalidInput))
		return
	}
	user := &fundora.User{Email: req.Email, OnboardingComplete: true}
	if req.Persona != "" {
		p, err := fundora.ParsePersona(req.Persona)
		if err != nil {
			s.writeError(w, err)
			return
		}
		user.Persona = p
	}

	text, err := s.advisor.Advise(r.Context(), advice.NewRequest(user, req.Prompt))
	if err != nil {
		s.log.Error().Err(err).Msg("advisor failed")
		text = advice.Apology
	}
	s.writeJSON(w, http.StatusOK, AdviceResponse{Response: text})
}

// decode reads the JSON body of r into v.
func (s *Server) decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", fundora.ErrInvalidInput, err)
	}
	return nil
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError maps err to a status code and writes it as {"error": "..."}.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, fundora.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, fundora.ErrUnknownPersona):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("request failed")
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
