package advice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/fundora"
)

const replPrompt = "assist> "

// Session is an interactive conversation between a user and an advisor. The
// exchanged messages are appended to the user's transcript in the store.
type Session struct {
	w       io.Writer
	r       *bufio.Reader
	advisor Advisor
	user    *fundora.User
	kv      fundora.KV
	// Print writes an answer, defaults to a plain Fprintln on the writer.
	Print func(w io.Writer, answer string)
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewSession creates a session for an onboarded user. The transcript is not
// saved if kv is nil.
func NewSession(w io.Writer, r io.Reader, advisor Advisor, user *fundora.User, kv fundora.KV) *Session {
	return &Session{
		w:       w,
		r:       bufio.NewReader(r),
		advisor: advisor,
		user:    user,
		kv:      kv,
		Print:   func(w io.Writer, answer string) { fmt.Fprintln(w, answer) },
		Now:     time.Now,
	}
}

// Ask answers a single query and records the exchange.
func (s *Session) Ask(ctx context.Context, query string) (string, error) {
	asked := s.Now()
	answer, err := s.advisor.Advise(ctx, NewRequest(s.user, query))
	if err != nil {
		return "", err
	}
	if s.kv != nil {
		err := fundora.AppendMessages(ctx, s.kv,
			fundora.NewMessage(query, true, asked),
			fundora.NewMessage(answer, false, s.Now()),
		)
		if err != nil {
			return answer, err
		}
	}
	return answer, nil
}

// Run starts the interactive loop. prompts are answered first, as if typed
// by the user. It returns when the user types "bye" or closes the input.
func (s *Session) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintf(s.w, "Welcome to Fundora, %s. Ask about your investments, type 'bye' to exit.\n", s.user.Name())

	for {
		fmt.Fprint(s.w, replPrompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				fmt.Fprintln(s.w)
				continue
			}
			fmt.Fprintln(s.w, input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil && (err != io.EOF || strings.TrimSpace(input) == "") {
				if err == io.EOF {
					fmt.Fprintln(s.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
		}

		if strings.EqualFold(input, "bye") {
			fmt.Fprintln(s.w, "Happy investing!")
			return nil
		}

		answer, err := s.Ask(ctx, input)
		if err != nil {
			if answer == "" {
				return err
			}
			// the answer is there, only the transcript failed.
			fmt.Fprintf(s.w, "warning: %v\n", err)
		}
		s.Print(s.w, answer)
	}
}
