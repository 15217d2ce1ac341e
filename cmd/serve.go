package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/fundora/advice"
	"github.com/etnz/fundora/server"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type serveCmd struct {
	addr     string
	model    string
	shutdown time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the quiz, the allocation engine and the assistant over HTTP" }
func (*serveCmd) Usage() string {
	return `fundora serve [-addr <host:port>]

  Serves the JSON API until interrupted:

    GET  /health
    GET  /api/questions
    GET  /api/questions/legacy
    POST /api/persona
    POST /api/allocation
    GET  /api/products
    POST /api/advice
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", getEnv(EnvAddr, ":8080"), "Address to listen on (default $"+EnvAddr+" or :8080)")
	f.StringVar(&c.model, "model", advice.DefaultModel, "Gemini model answering the advice requests")
	f.DurationVar(&c.shutdown, "shutdown-timeout", 30*time.Second, "Time given to in-flight requests on shutdown")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// requests are logged at info level.
	if zerolog.GlobalLevel() > zerolog.InfoLevel {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	advisor, err := advice.New(ctx, advice.Config{
		APIKey: os.Getenv(EnvGeminiKey),
		Model:  c.model,
		Logger: log.Logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the advisor: %v\n", err)
		return subcommands.ExitFailure
	}

	srv := server.New(server.Config{
		Log:     log.Logger,
		Addr:    c.addr,
		Engine:  Engine(),
		Advisor: advisor,
	})

	errs := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errs:
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	case <-quit:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Msg("Server stopped")
	return subcommands.ExitSuccess
}
