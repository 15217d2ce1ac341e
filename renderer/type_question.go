package renderer

import (
	"strconv"

	"github.com/etnz/fundora"
)

// Question is a quiz question, ready for display.
type Question struct {
	// Number is one based.
	Number  int              `json:"number"`
	Count   int              `json:"count"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

// QuestionOption is an answer, Key being what the user types to choose it.
type QuestionOption struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// NewQuestion creates the question i (zero based) of a banded quiz of n
// questions. Options are keyed by letter.
func NewQuestion(i, n int, q fundora.Question) *Question {
	v := &Question{Number: i + 1, Count: n, Text: q.Text, Options: make([]QuestionOption, 0, len(q.Options))}
	for _, o := range q.Options {
		v.Options = append(v.Options, QuestionOption{Key: o.Choice.String(), Text: o.Text})
	}
	return v
}

// NewWeightedQuestion creates the question i (zero based) of a weighted quiz
// of n questions. Options are keyed by their zero based index.
func NewWeightedQuestion(i, n int, q fundora.WeightedQuestion) *Question {
	v := &Question{Number: i + 1, Count: n, Text: q.Text, Options: make([]QuestionOption, 0, len(q.Options))}
	for j, o := range q.Options {
		v.Options = append(v.Options, QuestionOption{Key: strconv.Itoa(j), Text: o.Text})
	}
	return v
}
