package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/fundora"
	"github.com/etnz/fundora/advice"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, advisor advice.Advisor) *Server {
	t.Helper()
	return New(Config{Log: zerolog.Nop(), Advisor: advisor})
}

// do sends a request and decodes the JSON response into out, if not nil.
func do(t *testing.T, s *Server, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("%s %s Content-Type = %q, want application/json", method, path, got)
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s returned invalid JSON %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	var got map[string]string
	if code := do(t, newTestServer(t, nil), http.MethodGet, "/health", "", &got); code != http.StatusOK {
		t.Fatalf("GET /health = %d, want %d", code, http.StatusOK)
	}
	if got["status"] != "healthy" {
		t.Errorf("GET /health = %v, want healthy", got)
	}
}

func TestQuestions(t *testing.T) {
	s := newTestServer(t, nil)

	var questions []struct {
		ID       string `json:"id"`
		Question string `json:"question"`
		Options  []struct {
			Value string `json:"value"`
			Text  string `json:"text"`
		} `json:"options"`
	}
	if code := do(t, s, http.MethodGet, "/api/questions", "", &questions); code != http.StatusOK {
		t.Fatalf("GET /api/questions = %d", code)
	}
	if len(questions) != 10 {
		t.Fatalf("GET /api/questions returned %d questions, want 10", len(questions))
	}
	var letters []string
	for _, o := range questions[0].Options {
		letters = append(letters, o.Value)
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "D", "E"}, letters); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	var legacy []json.RawMessage
	if code := do(t, s, http.MethodGet, "/api/questions/legacy", "", &legacy); code != http.StatusOK || len(legacy) != 6 {
		t.Errorf("GET /api/questions/legacy = %d with %d questions, want 200 with 6", code, len(legacy))
	}
}

func TestPersona(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantPersona fundora.Persona
		wantScore   int
	}{
		{"all A", `{"answers":"AAAAAAAAAA"}`, http.StatusOK, fundora.Guardian, 10},
		{"all E", `{"answers":"E E E E E E E E E E"}`, http.StatusOK, fundora.Maverick, 50},
		{"all C", `{"answers":"ccccc,ccccc"}`, http.StatusOK, fundora.Explorer, 30},
		{"legacy", `{"indices":[2,2,2,2,2,2]}`, http.StatusOK, fundora.Aggressive, 18},
		{"too few", `{"answers":"ABC"}`, http.StatusBadRequest, "", 0},
		{"bad letter", `{"answers":"AAAAAAAAAF"}`, http.StatusBadRequest, "", 0},
		{"both", `{"answers":"AAAAAAAAAA","indices":[0]}`, http.StatusBadRequest, "", 0},
		{"unknown field", `{"answer":"AAAAAAAAAA"}`, http.StatusBadRequest, "", 0},
		{"not json", `answers`, http.StatusBadRequest, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Score   int             `json:"total_score"`
				Persona fundora.Persona `json:"persona"`
				Error   string          `json:"error"`
			}
			code := do(t, newTestServer(t, nil), http.MethodPost, "/api/persona", tt.body, &got)
			if code != tt.wantCode {
				t.Fatalf("POST /api/persona %s = %d, want %d (%s)", tt.body, code, tt.wantCode, got.Error)
			}
			if code != http.StatusOK {
				if got.Error == "" {
					t.Errorf("POST /api/persona %s has no error message", tt.body)
				}
				return
			}
			if got.Persona != tt.wantPersona || got.Score != tt.wantScore {
				t.Errorf("POST /api/persona %s = %v %d, want %v %d", tt.body, got.Persona, got.Score, tt.wantPersona, tt.wantScore)
			}
		})
	}
}

func TestAllocation(t *testing.T) {
	s := newTestServer(t, nil)

	var plan struct {
		Persona     string  `json:"persona"`
		Total       float64 `json:"total_investment"`
		Years       int     `json:"years"`
		Final       float64 `json:"final_value"`
		CAGR        float64 `json:"portfolio_cagr"`
		Allocations map[string]struct {
			Percent float64 `json:"percent"`
			Amount  float64 `json:"amount"`
		} `json:"allocations"`
		Projection []json.RawMessage `json:"year_by_year_projection"`
	}
	code := do(t, s, http.MethodPost, "/api/allocation", `{"persona":"guardian","principal":100000,"years":1}`, &plan)
	if code != http.StatusOK {
		t.Fatalf("POST /api/allocation = %d, want %d", code, http.StatusOK)
	}
	if plan.Persona != "The Guardian" || plan.Total != 100000 || plan.Final != 108475 || plan.CAGR != 8.48 {
		t.Errorf("POST /api/allocation = %+v", plan)
	}
	if got := plan.Allocations["Fixed Income"].Amount; got != 35000 {
		t.Errorf("Fixed Income amount = %v, want 35000", got)
	}
	if len(plan.Projection) != 2 {
		t.Errorf("projection has %d years, want 2", len(plan.Projection))
	}

	// years default to ten
	plan.Projection = nil
	if code := do(t, s, http.MethodPost, "/api/allocation", `{"persona":"The Maverick","principal":"250000"}`, &plan); code != http.StatusOK {
		t.Fatalf("POST /api/allocation = %d, want %d", code, http.StatusOK)
	}
	if plan.Years != fundora.DefaultYears || len(plan.Projection) != fundora.DefaultYears+1 {
		t.Errorf("default projection over %d years with %d points", plan.Years, len(plan.Projection))
	}
}

func TestAllocation_Errors(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{"persona":"The Gambler","principal":1000}`, http.StatusNotFound},
		{`{"persona":"Balanced","principal":1000}`, http.StatusNotFound},
		{`{"persona":"The Guardian","principal":-1}`, http.StatusBadRequest},
		{`{"persona":"The Guardian","principal":1000,"years":-2}`, http.StatusBadRequest},
		{`{"persona":"The Guardian","principal":1000,"years":100000}`, http.StatusBadRequest},
		{`{"persona":"The Guardian","principal":"lots"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		var got map[string]string
		if code := do(t, newTestServer(t, nil), http.MethodPost, "/api/allocation", tt.body, &got); code != tt.want {
			t.Errorf("POST /api/allocation %s = %d, want %d", tt.body, code, tt.want)
		}
		if got["error"] == "" {
			t.Errorf("POST /api/allocation %s has no error message", tt.body)
		}
	}
}

func TestProducts(t *testing.T) {
	s := newTestServer(t, nil)
	var all []fundora.Products
	if code := do(t, s, http.MethodGet, "/api/products", "", &all); code != http.StatusOK || len(all) != len(fundora.Categories) {
		t.Fatalf("GET /api/products = %d with %d entries", code, len(all))
	}
	if all[5].Category != fundora.Crypto {
		t.Errorf("last entry is %v, want %v", all[5].Category, fundora.Crypto)
	}

	var one fundora.Products
	if code := do(t, s, http.MethodGet, "/api/products?category=equities", "", &one); code != http.StatusOK || one.Category != fundora.Equities {
		t.Errorf("GET /api/products?category=equities = %d %v", code, one.Category)
	}
	if code := do(t, s, http.MethodGet, "/api/products?category=land", "", nil); code != http.StatusBadRequest {
		t.Errorf("GET /api/products?category=land = %d, want %d", code, http.StatusBadRequest)
	}
}

// advisorFunc adapts a function to advice.Advisor.
type advisorFunc func(context.Context, advice.Request) (string, error)

func (f advisorFunc) Advise(ctx context.Context, r advice.Request) (string, error) { return f(ctx, r) }

func TestAdvice(t *testing.T) {
	var received advice.Request
	s := newTestServer(t, advisorFunc(func(_ context.Context, r advice.Request) (string, error) {
		received = r
		return "Start a SIP.", nil
	}))

	var got AdviceResponse
	code := do(t, s, http.MethodPost, "/api/advice", `{"prompt":"how to start?","persona":"hustler","email":"kiran@example.com"}`, &got)
	if code != http.StatusOK || got.Response != "Start a SIP." {
		t.Fatalf("POST /api/advice = %d %q", code, got.Response)
	}
	if received.Persona != fundora.Hustler || received.Name != "kiran" || received.Query != "how to start?" {
		t.Errorf("advisor received %+v", received)
	}
	if !strings.Contains(received.Prompt, "User Profile: The Hustler Investor") {
		t.Errorf("advisor received prompt %q", received.Prompt)
	}

	if code := do(t, s, http.MethodPost, "/api/advice", `{"prompt":"  "}`, nil); code != http.StatusBadRequest {
		t.Errorf("POST /api/advice with an empty prompt = %d, want %d", code, http.StatusBadRequest)
	}
}

func TestAdvice_Fallback(t *testing.T) {
	var got AdviceResponse
	code := do(t, newTestServer(t, nil), http.MethodPost, "/api/advice", `{"prompt":"I have 5 lakh","persona":"The Guardian"}`, &got)
	if code != http.StatusOK || !strings.Contains(got.Response, "₹500,000 is substantial!") {
		t.Errorf("POST /api/advice = %d %q", code, got.Response)
	}

	s := newTestServer(t, advisorFunc(func(context.Context, advice.Request) (string, error) {
		return "", context.DeadlineExceeded
	}))
	if code := do(t, s, http.MethodPost, "/api/advice", `{"prompt":"hi"}`, &got); code != http.StatusOK || got.Response != advice.Apology {
		t.Errorf("POST /api/advice with a failing advisor = %d %q, want the apology", code, got.Response)
	}
}
