package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/renderer"
	"github.com/google/subcommands"
)

type quizCmd struct {
	legacy bool
}

func (*quizCmd) Name() string     { return "quiz" }
func (*quizCmd) Synopsis() string { return "take the investor quiz and discover your persona" }
func (*quizCmd) Usage() string {
	return `fundora quiz [-legacy] [answers]

  Asks the onboarding questions and stores the resulting persona.

  Answers can be given on the command line instead: one letter per question
  (e.g. ABCDEEDCBA), or with -legacy one zero based option index per question
  (e.g. 0 1 2 1 0 2 1 0).
`
}

func (c *quizCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.legacy, "legacy", false, "Use the weighted quiz, classifying into Conservative, Balanced or Aggressive")
}

func (c *quizCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	u, err := currentUser(ctx, kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var (
		res      fundora.PersonaResult
		maxScore int
	)
	answers := strings.Join(f.Args(), " ")
	switch {
	case c.legacy && answers != "":
		var indices []int
		indices, err = parseIndices(answers)
		if err == nil {
			res, err = fundora.DefaultWeightedQuiz().Classify(indices)
		}
	case c.legacy:
		res, err = askWeighted(os.Stdout, os.Stdin, fundora.DefaultWeightedQuiz())
	case answers != "":
		res, err = fundora.DefaultQuiz().ClassifyLetters(answers)
		maxScore = fundora.DefaultQuiz().Len() * fundora.E.Points()
	default:
		res, err = askBanded(os.Stdout, os.Stdin, fundora.DefaultQuiz())
		maxScore = fundora.DefaultQuiz().Len() * fundora.E.Points()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error classifying answers: %v\n", err)
		if errors.Is(err, fundora.ErrInvalidInput) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	u.Onboard(res)
	if err := fundora.SaveUser(ctx, kv, u); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving user: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPersona(res, u.Name(), maxScore))
	fmt.Println("How much do you plan to invest? Run 'fundora allocate <amount>' to get your plan.")
	return subcommands.ExitSuccess
}

// parseIndices parses option indices separated by spaces or commas.
func parseIndices(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an option index", fundora.ErrInvalidInput, f)
		}
		indices = append(indices, i)
	}
	return indices, nil
}

// ask displays a question and reads lines from r until parse accepts one.
func ask[T any](w io.Writer, r *bufio.Reader, q *renderer.Question, parse func(string) (T, error)) (T, error) {
	fprintMarkdown(w, renderer.RenderQuestion(q))
	for {
		fmt.Fprint(w, "> ")
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			v, perr := parse(line)
			if perr == nil {
				return v, nil
			}
			fmt.Fprintf(w, "%v, try again.\n", perr)
		}
		if err != nil {
			var zero T
			if err == io.EOF {
				err = fmt.Errorf("%w: quiz interrupted at question %d", fundora.ErrInvalidInput, q.Number)
			}
			return zero, err
		}
	}
}

func askBanded(w io.Writer, in io.Reader, quiz *fundora.Quiz) (fundora.PersonaResult, error) {
	r := bufio.NewReader(in)
	answers := make([]fundora.Choice, 0, quiz.Len())
	for i, q := range quiz.Questions() {
		a, err := ask(w, r, renderer.NewQuestion(i, quiz.Len(), q), fundora.ParseChoice)
		if err != nil {
			return fundora.PersonaResult{}, err
		}
		answers = append(answers, a)
	}
	return quiz.Classify(answers)
}

func askWeighted(w io.Writer, in io.Reader, quiz *fundora.WeightedQuiz) (fundora.PersonaResult, error) {
	r := bufio.NewReader(in)
	answers := make([]int, 0, quiz.Len())
	for i, q := range quiz.Questions() {
		n := len(q.Options)
		a, err := ask(w, r, renderer.NewWeightedQuestion(i, quiz.Len(), q), func(s string) (int, error) {
			j, err := strconv.Atoi(s)
			if err != nil || j < 0 || j >= n {
				return 0, fmt.Errorf("%q is not an option between 0 and %d", s, n-1)
			}
			return j, nil
		})
		if err != nil {
			return fundora.PersonaResult{}, err
		}
		answers = append(answers, a)
	}
	return quiz.Classify(answers)
}
