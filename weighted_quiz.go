package fundora

import (
	"fmt"
	"slices"
)

// Weights is the contribution of an option to each risk persona.
type Weights struct {
	Conservative int `json:"Conservative"`
	Balanced     int `json:"Balanced"`
	Aggressive   int `json:"Aggressive"`
}

func (w Weights) add(v Weights) Weights {
	return Weights{
		Conservative: w.Conservative + v.Conservative,
		Balanced:     w.Balanced + v.Balanced,
		Aggressive:   w.Aggressive + v.Aggressive,
	}
}

// WeightedOption is an answer carrying per persona weights.
type WeightedOption struct {
	Text    string  `json:"text"`
	Weights Weights `json:"scores"`
}

// WeightedQuestion is a question of the weighted quiz.
type WeightedQuestion struct {
	ID      string           `json:"id"`
	Text    string           `json:"question"`
	Options []WeightedOption `json:"options"`
}

// WeightedQuiz classifies answers, given as zero based option indices, by
// accumulating each option's weights and picking the persona with the highest
// total. It is the scheme of the first onboarding flow and produces the
// Conservative, Balanced and Aggressive personas.
//
// Ties are broken in a fixed order: Conservative, then Aggressive, then
// Balanced.
type WeightedQuiz struct {
	questions []WeightedQuestion
}

// NewWeightedQuiz returns a WeightedQuiz over a copy of questions.
func NewWeightedQuiz(questions []WeightedQuestion) (*WeightedQuiz, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: a quiz needs at least one question", ErrInvalidInput)
	}
	qs := make([]WeightedQuestion, len(questions))
	for i, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %q has no options", ErrInvalidInput, q.ID)
		}
		q.Options = slices.Clone(q.Options)
		qs[i] = q
	}
	return &WeightedQuiz{questions: qs}, nil
}

var defaultWeightedQuiz = mustWeightedQuiz(NewWeightedQuiz(defaultWeightedQuestions))

func mustWeightedQuiz(q *WeightedQuiz, err error) *WeightedQuiz {
	if err != nil {
		panic(err)
	}
	return q
}

// DefaultWeightedQuiz returns the six question weighted quiz.
func DefaultWeightedQuiz() *WeightedQuiz { return defaultWeightedQuiz }

// Len returns the number of questions.
func (q *WeightedQuiz) Len() int { return len(q.questions) }

// Question returns a copy of the i-th question.
func (q *WeightedQuiz) Question(i int) WeightedQuestion {
	qq := q.questions[i]
	qq.Options = slices.Clone(qq.Options)
	return qq
}

// Questions returns a copy of all the questions in order.
func (q *WeightedQuiz) Questions() []WeightedQuestion {
	qs := make([]WeightedQuestion, len(q.questions))
	for i := range q.questions {
		qs[i] = q.Question(i)
	}
	return qs
}

// Totals accumulates the weights of the selected options.
func (q *WeightedQuiz) Totals(answers []int) (Weights, error) {
	if len(answers) != len(q.questions) {
		return Weights{}, fmt.Errorf("%w: got %d answers, want %d", ErrInvalidInput, len(answers), len(q.questions))
	}
	var total Weights
	for i, a := range answers {
		opts := q.questions[i].Options
		if a < 0 || a >= len(opts) {
			return Weights{}, fmt.Errorf("%w: answer %d: option %d out of range [0,%d)", ErrInvalidInput, i+1, a, len(opts))
		}
		total = total.add(opts[a].Weights)
	}
	return total, nil
}

// Classify returns the persona with the highest accumulated weight.
func (q *WeightedQuiz) Classify(answers []int) (PersonaResult, error) {
	total, err := q.Totals(answers)
	if err != nil {
		return PersonaResult{}, err
	}
	persona, score := pickWeighted(total)
	d := riskDescriptions[persona]
	return PersonaResult{Score: score, Persona: persona, Description: d[0], Advice: d[1]}, nil
}

// pickWeighted applies the tie-break order Conservative, Aggressive, Balanced.
func pickWeighted(w Weights) (Persona, int) {
	best := max(w.Conservative, w.Balanced, w.Aggressive)
	switch best {
	case w.Conservative:
		return Conservative, best
	case w.Aggressive:
		return Aggressive, best
	default:
		return Balanced, best
	}
}
