package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/etnz/fundora"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

// execute runs a command the way the commander does, with args after the
// command name.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// useStore points the global -store flag to a fresh directory.
func useStore(t *testing.T) {
	t.Helper()
	old := *storePath
	*storePath = t.TempDir()
	t.Cleanup(func() { *storePath = old })
}

func TestParseIndices(t *testing.T) {
	got, err := parseIndices("0 1,2\t1")
	if err != nil {
		t.Fatalf("parseIndices() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 1}, got); diff != "" {
		t.Errorf("parseIndices() mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseIndices("0 one"); !errors.Is(err, fundora.ErrInvalidInput) {
		t.Errorf("parseIndices(0 one) error = %v, want ErrInvalidInput", err)
	}
}

func TestAskBanded(t *testing.T) {
	// a wrong answer is asked again.
	in := strings.Repeat("c\n", 9) + "z\n\nC\n"
	var out bytes.Buffer
	res, err := askBanded(&out, strings.NewReader(in), fundora.DefaultQuiz())
	if err != nil {
		t.Fatalf("askBanded() unexpected error: %v", err)
	}
	if res.Persona != fundora.Explorer || res.Score != 30 {
		t.Errorf("askBanded() = %v %d, want %v 30", res.Persona, res.Score, fundora.Explorer)
	}
	if !strings.Contains(out.String(), "try again") {
		t.Errorf("askBanded() output %q does not ask again", out.String())
	}
	n := fundora.DefaultQuiz().Len()
	for i := 1; i <= n; i++ {
		if want := fmt.Sprintf("Question %d/%d", i, n); !strings.Contains(out.String(), want) {
			t.Errorf("askBanded() output does not show %q", want)
		}
	}
	if !strings.Contains(out.String(), "Savings account only") {
		t.Errorf("askBanded() output does not show the options")
	}
}

func TestAskBanded_Interrupted(t *testing.T) {
	var out bytes.Buffer
	_, err := askBanded(&out, strings.NewReader("A\nB\n"), fundora.DefaultQuiz())
	if !errors.Is(err, fundora.ErrInvalidInput) {
		t.Errorf("askBanded() error = %v, want ErrInvalidInput", err)
	}
}

func TestAskWeighted(t *testing.T) {
	var out bytes.Buffer
	res, err := askWeighted(&out, strings.NewReader("3\n2\n2\n2\n2\n2\n2\n"), fundora.DefaultWeightedQuiz())
	if err != nil {
		t.Fatalf("askWeighted() unexpected error: %v", err)
	}
	if res.Persona != fundora.Aggressive || res.Score != 18 {
		t.Errorf("askWeighted() = %v %d, want %v 18", res.Persona, res.Score, fundora.Aggressive)
	}
}

func TestQueryPlan(t *testing.T) {
	plan, err := fundora.DefaultEngine().Plan(fundora.Guardian, fundora.INR(100000), 1)
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	tests := []struct {
		path string
		want any
	}{
		{`$.final_value`, 108475.0},
		{`$.persona`, "The Guardian"},
		{`$.allocations["Govt Schemes"].amount`, 30000.0},
		{`$.portfolio_cagr`, 8.48},
	}
	for _, tc := range tests {
		got, err := queryPlan(plan, tc.path)
		if err != nil {
			t.Errorf("queryPlan(%q) unexpected error: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("queryPlan(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestUserLifecycle(t *testing.T) {
	useStore(t)

	if got := execute(t, &whoamiCmd{}); got != subcommands.ExitFailure {
		t.Errorf("whoami before login = %v, want %v", got, subcommands.ExitFailure)
	}
	if got := execute(t, &loginCmd{}, "not-an-email"); got != subcommands.ExitUsageError {
		t.Errorf("login not-an-email = %v, want %v", got, subcommands.ExitUsageError)
	}
	if got := execute(t, &loginCmd{}, "asha@example.com"); got != subcommands.ExitSuccess {
		t.Fatalf("login = %v, want %v", got, subcommands.ExitSuccess)
	}
	if got := execute(t, &quizCmd{}, "ABC"); got != subcommands.ExitUsageError {
		t.Errorf("quiz ABC = %v, want %v", got, subcommands.ExitUsageError)
	}
	if got := execute(t, &quizCmd{}, "EEEEEEEEEE"); got != subcommands.ExitSuccess {
		t.Fatalf("quiz = %v, want %v", got, subcommands.ExitSuccess)
	}

	kv, err := OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() unexpected error: %v", err)
	}
	u, err := currentUser(context.Background(), kv)
	kv.Close()
	if err != nil {
		t.Fatalf("currentUser() unexpected error: %v", err)
	}
	if u.Persona != fundora.Maverick || !u.OnboardingComplete {
		t.Errorf("user after quiz = %+v, want an onboarded %v", u, fundora.Maverick)
	}

	// logging in again keeps the persona.
	execute(t, &loginCmd{}, "asha@example.com")
	if got := execute(t, &allocateCmd{}, "-q", "$.persona", "1", "lakh"); got != subcommands.ExitSuccess {
		t.Errorf("allocate = %v, want %v", got, subcommands.ExitSuccess)
	}

	if got := execute(t, &logoutCmd{}); got != subcommands.ExitSuccess {
		t.Errorf("logout = %v, want %v", got, subcommands.ExitSuccess)
	}
	if got := execute(t, &allocateCmd{}, "1", "lakh"); got != subcommands.ExitUsageError {
		t.Errorf("allocate after logout = %v, want %v", got, subcommands.ExitUsageError)
	}
}

func TestAllocate_Errors(t *testing.T) {
	useStore(t)
	tests := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{[]string{"-p", "guardian", "nothing"}, subcommands.ExitUsageError},
		{[]string{"-p", "nobody", "1000"}, subcommands.ExitUsageError},
		{[]string{"-p", "balanced", "1000"}, subcommands.ExitUsageError},
		{[]string{"-p", "guardian", "-y", "0", "1000"}, subcommands.ExitUsageError},
		{[]string{"-p", "guardian", "-y", "101", "1000"}, subcommands.ExitUsageError},
		{[]string{"-p", "guardian", "-q", "$.nothing", "1000"}, subcommands.ExitUsageError},
		{[]string{"-p", "guardian", "-json", "1000"}, subcommands.ExitSuccess},
	}
	for _, tc := range tests {
		if got := execute(t, &allocateCmd{}, tc.args...); got != tc.want {
			t.Errorf("allocate %v = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestProducts(t *testing.T) {
	if got := execute(t, &productsCmd{}, "-json", "Fixed Income", "crypto"); got != subcommands.ExitSuccess {
		t.Errorf("products = %v, want %v", got, subcommands.ExitSuccess)
	}
	if got := execute(t, &productsCmd{}, "Stamps"); got != subcommands.ExitUsageError {
		t.Errorf("products Stamps = %v, want %v", got, subcommands.ExitUsageError)
	}
}

func TestTopic(t *testing.T) {
	tests := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitSuccess},
		{[]string{"-l"}, subcommands.ExitSuccess},
		{[]string{"quiz", "allocate"}, subcommands.ExitSuccess},
		{[]string{"taxes"}, subcommands.ExitUsageError},
	}
	for _, tc := range tests {
		if got := execute(t, &topicCmd{}, tc.args...); got != tc.want {
			t.Errorf("topic %v = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"login", "allocate", "serve", "help"} {
		if !IsCommand(name) {
			t.Errorf("IsCommand(%q) = false, want true", name)
		}
	}
	if IsCommand("hello") {
		t.Errorf("IsCommand(hello) = true, want false")
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range commandNames() {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no %q subcommand", name)
		}
	}
	if _, ok := c.Sub["allocate"].Flags["p"]; !ok {
		t.Errorf("Completion() allocate has no -p flag")
	}
	if _, ok := c.Flags["store"]; !ok {
		t.Errorf("Completion() has no -store flag")
	}
}
