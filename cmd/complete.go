package cmd

import (
	"flag"
	"io"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// boolFlag is implemented by the flag values that do not take an argument.
type boolFlag interface {
	IsBoolFlag() bool
}

// flagPredictors predicts nothing after boolean flags and anything after
// the others.
func flagPredictors(f *flag.FlagSet, special map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := special[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// Completion describes the command line for the shell completion.
func Completion() *complete.Command {
	personas := predict.Set{}
	for _, p := range fundora.DefaultEngine().Personas() {
		personas = append(personas, string(p))
	}
	categories := predict.Set{}
	for _, c := range fundora.Categories {
		categories = append(categories, c.String())
	}

	args := map[string]complete.Predictor{
		"products": categories,
		"topic":    predict.Set(docs.Names()),
	}
	special := map[string]complete.Predictor{
		"p":     personas,
		"store": predict.Files("*"),
	}

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine, special),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		c.SetFlags(f)
		sub := &complete.Command{
			Flags: flagPredictors(f, special),
			Args:  args[c.Name()],
		}
		if sub.Args == nil {
			sub.Args = predict.Nothing
		}
		root.Sub[c.Name()] = sub
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	return root
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}

// Complete runs the shell completion when the program is invoked by the
// shell for it, and exits. It does nothing otherwise.
func Complete(name string) {
	Completion().Complete(name)
}
