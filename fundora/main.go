// Command fundora is an investment companion: it classifies an investor into
// a persona, allocates and projects an amount, and answers questions.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fundora/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("fundora")
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	cmd.SetupLog()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
