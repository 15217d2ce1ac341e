package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists the subcommands of fundora, in the order they are
// documented.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&quizCmd{},
	&allocateCmd{},
	&productsCmd{},
	&assistCmd{},
	&serveCmd{},
	&topicCmd{},
}

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
