package fundora

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Choice is the letter of an answer to a quiz question, from A to E.
type Choice byte

const (
	A Choice = 'A'
	B Choice = 'B'
	C Choice = 'C'
	D Choice = 'D'
	E Choice = 'E'
)

// Choices lists the valid choices in ascending order.
var Choices = []Choice{A, B, C, D, E}

func (c Choice) valid() bool { return c >= A && c <= E }

// Points returns the score of the choice: A=1 up to E=5.
func (c Choice) Points() int {
	if !c.valid() {
		return 0
	}
	return int(c-A) + 1
}

func (c Choice) String() string { return string(rune(c)) }

// ParseChoice parses a single letter, case insensitive.
func ParseChoice(s string) (Choice, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !Choice(s[0]).valid() {
		return 0, fmt.Errorf("%w: choice %q is not one of A, B, C, D, E", ErrInvalidInput, s)
	}
	return Choice(s[0]), nil
}

// ParseChoices parses a compact answer sheet like "ABCDEEDCBA". Spaces and
// commas are ignored.
func ParseChoices(s string) ([]Choice, error) {
	var choices []Choice
	for _, r := range s {
		switch r {
		case ' ', ',', '\t':
			continue
		}
		c, err := ParseChoice(string(r))
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, nil
}

func (c Choice) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Choice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseChoice(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
