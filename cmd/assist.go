package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fundora/advice"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// assistCmd is the subcommand for the investment assistant.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the investment assistant" }
func (*assistCmd) Usage() string {
	return `fundora assist [-model <name>] [prompt]

  Starts an interactive session with the investment assistant, tailored to
  your persona. Type 'bye' to exit. The conversation is saved in the store.

  Answers come from Gemini when $` + EnvGeminiKey + ` is set, from built-in
  rules otherwise.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", advice.DefaultModel, "Gemini model answering the questions")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !u.OnboardingComplete {
		fmt.Fprintln(os.Stderr, "Error: run 'fundora quiz' before asking for advice")
		return subcommands.ExitFailure
	}

	advisor, err := advice.New(ctx, advice.Config{
		APIKey: os.Getenv(EnvGeminiKey),
		Model:  c.model,
		Logger: log.Logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the assistant: %v\n", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	s := advice.NewSession(os.Stdout, os.Stdin, advisor, u, kv)
	s.Print = func(_ io.Writer, answer string) { printMarkdown(answer) }
	if err := s.Run(ctx, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
