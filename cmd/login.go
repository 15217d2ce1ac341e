package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundora"
	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in with an email address" }
func (*loginCmd) Usage() string {
	return `fundora login <email>

  Signs in. A returning user keeps their persona, a new one has to take the quiz.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "login requires exactly one email address")
		return subcommands.ExitUsageError
	}
	u, err := fundora.NewUser(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing in: %v\n", err)
		return subcommands.ExitUsageError
	}

	kv, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	// the same email signs back into the stored profile.
	prev, err := fundora.LoadUser(ctx, kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading user: %v\n", err)
		return subcommands.ExitFailure
	}
	if prev != nil && prev.Email == u.Email {
		u = prev
	}
	if err := fundora.SaveUser(ctx, kv, u); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving user: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Signed in as %s.\n", u.Email)
	if !u.OnboardingComplete {
		fmt.Println("Run 'fundora quiz' to discover your investor persona.")
	}
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out and forget the user profile" }
func (*logoutCmd) Usage() string {
	return `fundora logout

  Signs out. The user profile and the assistant transcript are deleted.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kv, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer kv.Close()

	if err := fundora.ClearUser(ctx, kv); err != nil {
		fmt.Fprintf(os.Stderr, "Error signing out: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct {
	json bool
}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "display the signed-in user" }
func (*whoamiCmd) Usage() string {
	return `fundora whoami [-json]

  Displays the signed-in user and their persona.
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the user profile as JSON")
}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.json {
		return printJSON(u)
	}

	fmt.Println(u.Email)
	if u.OnboardingComplete {
		fmt.Printf("%s (%s risk)\n", u.Persona, u.Persona.Risk())
	} else {
		fmt.Println("not onboarded yet, run 'fundora quiz'")
	}
	return subcommands.ExitSuccess
}
