package fundora

import (
	"fmt"
	"slices"
)

// Option is a lettered answer to a quiz question.
type Option struct {
	Choice Choice `json:"value"`
	Text   string `json:"text"`
}

// Question is a question of the banded quiz.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// Option returns the option for choice c, if the question offers it.
func (q Question) Option(c Choice) (Option, bool) {
	for _, o := range q.Options {
		if o.Choice == c {
			return o, true
		}
	}
	return Option{}, false
}

// Quiz classifies answers by summing the points of each choice (A=1 to E=5)
// and looking the total up in a list of contiguous score bands.
//
// A Quiz is immutable once built and safe for concurrent use.
type Quiz struct {
	questions []Question
	bands     []Band
}

// NewQuiz validates the tables and returns a Quiz. Every question must offer
// the five choices A to E, and the bands must cover every possible score
// (one point per question to five points per question) without gap or
// overlap, in ascending order.
func NewQuiz(questions []Question, bands []Band) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: a quiz needs at least one question", ErrInvalidInput)
	}
	for _, q := range questions {
		for _, c := range Choices {
			if _, ok := q.Option(c); !ok {
				return nil, fmt.Errorf("%w: question %q has no option %v", ErrInvalidInput, q.ID, c)
			}
		}
	}
	lowest, highest := len(questions)*A.Points(), len(questions)*E.Points()
	next := lowest
	for _, b := range bands {
		if b.Min != next || b.Max < b.Min {
			return nil, fmt.Errorf("%w: band %v does not start at %d", ErrInvalidInput, b, next)
		}
		next = b.Max + 1
	}
	if next != highest+1 {
		return nil, fmt.Errorf("%w: bands stop at %d, want %d", ErrInvalidInput, next-1, highest)
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		qs[i] = q
	}
	return &Quiz{questions: qs, bands: slices.Clone(bands)}, nil
}

var defaultQuiz = mustQuiz(NewQuiz(defaultQuestions, defaultBands))

func mustQuiz(q *Quiz, err error) *Quiz {
	if err != nil {
		panic(err)
	}
	return q
}

// DefaultQuiz returns the ten question onboarding quiz.
func DefaultQuiz() *Quiz { return defaultQuiz }

// Len returns the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Question returns a copy of the i-th question.
func (q *Quiz) Question(i int) Question {
	qq := q.questions[i]
	qq.Options = slices.Clone(qq.Options)
	return qq
}

// Questions returns a copy of all the questions in order.
func (q *Quiz) Questions() []Question {
	qs := make([]Question, len(q.questions))
	for i := range q.questions {
		qs[i] = q.Question(i)
	}
	return qs
}

// Bands returns a copy of the score bands in ascending order.
func (q *Quiz) Bands() []Band { return slices.Clone(q.bands) }

// Band returns the band containing score.
func (q *Quiz) Band(score int) (Band, error) {
	for _, b := range q.bands {
		if b.Contains(score) {
			return b, nil
		}
	}
	return Band{}, fmt.Errorf("%w: score %d is out of range", ErrInvalidInput, score)
}

// Score sums the points of the answers. There must be exactly one valid
// choice per question.
func (q *Quiz) Score(answers []Choice) (int, error) {
	if len(answers) != len(q.questions) {
		return 0, fmt.Errorf("%w: got %d answers, want %d", ErrInvalidInput, len(answers), len(q.questions))
	}
	score := 0
	for i, a := range answers {
		if !a.valid() {
			return 0, fmt.Errorf("%w: answer %d: %q is not one of A, B, C, D, E", ErrInvalidInput, i+1, rune(a))
		}
		score += a.Points()
	}
	return score, nil
}

// Classify scores the answers and returns the persona of the matching band.
func (q *Quiz) Classify(answers []Choice) (PersonaResult, error) {
	score, err := q.Score(answers)
	if err != nil {
		return PersonaResult{}, err
	}
	b, err := q.Band(score)
	if err != nil {
		return PersonaResult{}, err
	}
	return b.result(score), nil
}

// ClassifyLetters parses an answer sheet like "ABCDEEDCBA" and classifies it.
func (q *Quiz) ClassifyLetters(s string) (PersonaResult, error) {
	answers, err := ParseChoices(s)
	if err != nil {
		return PersonaResult{}, err
	}
	return q.Classify(answers)
}
