package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundora"
	"github.com/etnz/fundora/renderer"
	"github.com/google/subcommands"
)

type allocateCmd struct {
	persona  string
	years    int
	json     bool
	query    string
	products bool
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "split an amount across asset categories and project its growth" }
func (*allocateCmd) Usage() string {
	return `fundora allocate [-p <persona>] [-y <years>] [-json] [-q <jsonpath>] [-products] <amount>

  Allocates the amount according to a persona and projects its growth.

  The amount is free text: '5 lakh', '₹25,000', '2.5k' or '1 crore' all work.
  The persona defaults to the signed-in user's one.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.persona, "p", "", "Persona to allocate for, e.g. guardian or 'The Maverick'. Defaults to the signed-in user's persona.")
	f.IntVar(&c.years, "y", fundora.DefaultYears, fmt.Sprintf("Projection horizon in years, at most %d", fundora.MaxYears))
	f.BoolVar(&c.json, "json", false, "Print the plan as JSON")
	f.StringVar(&c.query, "q", "", "Print only the result of a JSONPath query over the JSON plan, e.g. '$.final_value'")
	f.BoolVar(&c.products, "products", false, "Also list the products of the funded categories")
}

func (c *allocateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(f.Args(), " ")
	amount, ok := fundora.ParseAmount(text)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no amount found in %q\n", text)
		return subcommands.ExitUsageError
	}

	persona, err := c.resolvePersona(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine := Engine()
	plan, err := engine.Plan(persona, fundora.M(amount, engine.Currency()), c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the plan: %v\n", err)
		if errors.Is(err, fundora.ErrInvalidInput) || errors.Is(err, fundora.ErrUnknownPersona) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		v, err := queryPlan(plan, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying the plan: %v\n", err)
			return subcommands.ExitUsageError
		}
		return printQueryResult(v)
	case c.json:
		return printJSON(plan)
	}

	printMarkdown(renderer.RenderPlan(plan, engine.Rate))
	if c.products {
		printMarkdown(renderer.RenderProducts(fundora.DefaultCatalog().All(), plan.Allocation))
	}
	return subcommands.ExitSuccess
}

// resolvePersona returns the -p persona, or the signed-in user's one.
func (c *allocateCmd) resolvePersona(ctx context.Context) (fundora.Persona, error) {
	if c.persona != "" {
		return fundora.ParsePersona(c.persona)
	}
	kv, err := OpenStore()
	if err != nil {
		return "", err
	}
	defer kv.Close()
	u, err := currentUser(ctx, kv)
	if err != nil {
		return "", fmt.Errorf("%w, or pass a persona with -p", err)
	}
	if !u.OnboardingComplete {
		return "", errors.New("no persona yet, run 'fundora quiz' or pass a persona with -p")
	}
	return u.Persona, nil
}

// queryPlan evaluates a JSONPath expression over the JSON form of the plan.
func queryPlan(plan *fundora.Plan, path string) (any, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	return jsonpath.Get(path, jobj)
}

// printQueryResult prints scalars bare and anything else as JSON.
func printQueryResult(v any) subcommands.ExitStatus {
	switch v := v.(type) {
	case string:
		fmt.Println(v)
		return subcommands.ExitSuccess
	case float64, bool:
		out, _ := json.Marshal(v)
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}
	return printJSON(v)
}
