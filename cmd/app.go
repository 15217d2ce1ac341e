// Package cmd implements the fundora command line application.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundora"
	"github.com/etnz/fundora/store"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read as defaults of the global flags, and passed
// down to extensions.
const (
	EnvStore       = "FUNDORA_STORE"
	EnvStoreDriver = "FUNDORA_STORE_DRIVER"
	EnvCurrency    = "FUNDORA_CURRENCY"
	EnvVerbose     = "FUNDORA_VERBOSE"
	EnvAddr        = "FUNDORA_ADDR"
	EnvGeminiKey   = "GEMINI_API_KEY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storePath   = flag.String("store", "", "Path to the state store, a directory or a .db SQLite file (default $"+EnvStore+" or ~/.fundora)")
	storeDriver = flag.String("store-driver", "", "Store backend, 'dir' or 'sqlite', guessed from the path by default (default $"+EnvStoreDriver+")")
	currency    = flag.String("currency", "", "Currency of the amounts (default $"+EnvCurrency+" or INR)")
	Verbose     = flag.Bool("v", false, "Verbose logging (default $"+EnvVerbose+")")
)

// LoadEnv loads a .env file from the working directory, if there is one.
// It must be called before the flags are used.
func LoadEnv() {
	_ = godotenv.Load()
}

// getEnv retrieves an environment variable value, returning a fallback if the
// variable is not set or is empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SetupLog configures the global logger: human readable on stderr, debug
// level when verbose.
func SetupLog() {
	level := zerolog.WarnLevel
	if verbose() {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

func storeLocation() string {
	if *storePath != "" {
		return *storePath
	}
	if p := os.Getenv(EnvStore); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fundora"
	}
	return filepath.Join(home, ".fundora")
}

func storeBackend() string {
	if *storeDriver != "" {
		return *storeDriver
	}
	return os.Getenv(EnvStoreDriver)
}

func defaultCurrency() string {
	if *currency != "" {
		return *currency
	}
	return getEnv(EnvCurrency, fundora.DefaultCurrency)
}

// OpenStore opens the application state store.
func OpenStore() (store.Store, error) {
	path := storeLocation()
	log.Debug().Str("path", path).Str("driver", storeBackend()).Msg("opening store")
	s, err := store.Open(storeBackend(), path)
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", path, err)
	}
	return s, nil
}

// Engine returns the allocation engine working in the configured currency.
func Engine() *fundora.Engine {
	return fundora.DefaultEngine().WithCurrency(defaultCurrency())
}

var errNotLoggedIn = errors.New("not logged in, run 'fundora login <email>' first")

// currentUser loads the signed-in user.
func currentUser(ctx context.Context, kv fundora.KV) (*fundora.User, error) {
	u, err := fundora.LoadUser(ctx, kv)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errNotLoggedIn
	}
	return u, nil
}

// printMarkdown renders md for the terminal on stdout.
func printMarkdown(md string) { fprintMarkdown(os.Stdout, md) }

// fprintMarkdown renders md for the terminal, or writes it raw when it cannot.
func fprintMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// printJSON writes v indented on stdout.
func printJSON(v any) subcommands.ExitStatus {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
