package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct {
	json bool
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list investment products by category" }
func (*productsCmd) Usage() string {
	return `fundora products [-json] [category...]

  Lists the products recommended for each asset category, or only for the
  given ones (e.g. Equities or 'Fixed Income').
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the products as JSON")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog := fundora.DefaultCatalog()
	entries := catalog.All()
	if f.NArg() > 0 {
		entries = entries[:0]
		for _, arg := range f.Args() {
			cat, err := fundora.ParseCategory(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			entries = append(entries, catalog.Products(cat))
		}
	}

	if c.json {
		return printJSON(entries)
	}
	printMarkdown(renderer.RenderProducts(entries, nil))
	return subcommands.ExitSuccess
}
