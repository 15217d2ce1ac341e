package fundora

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v, want %v", c.String(), got, err, c)
		}
	}
	if got, err := ParseCategory("mutual funds"); err != nil || got != MutualFunds {
		t.Errorf("ParseCategory(%q) = %v, %v, want %v", "mutual funds", got, err, MutualFunds)
	}
	if _, err := ParseCategory("Real Estate"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseCategory(%q) error = %v, want %v", "Real Estate", err, ErrInvalidInput)
	}
}

func TestCategory_JSON(t *testing.T) {
	data, err := json.Marshal([]Category{GoldSilver, Crypto})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if want := `["Gold/Silver","Crypto"]`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	var got []Category
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != GoldSilver || got[1] != Crypto {
		t.Errorf("Unmarshal() = %v, want [Gold/Silver Crypto]", got)
	}
}

func TestCategory_Color(t *testing.T) {
	if got := Equities.Color(); got != "#9C27B0" {
		t.Errorf("Equities.Color() = %q, want %q", got, "#9C27B0")
	}
	if got := Category(42).Color(); got != "" {
		t.Errorf("Category(42).Color() = %q, want empty", got)
	}
}
