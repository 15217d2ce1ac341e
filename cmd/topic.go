package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundora/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the user manual" }
func (*topicCmd) Usage() string {
	return `fundora topic [-l] [topic...]

  Displays pages of the user manual: the table of contents without
  arguments, every page for '*'.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topic names, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		fmt.Println(strings.Join(docs.Names(), "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}
	page, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, docs.ErrUnknownTopic) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}
