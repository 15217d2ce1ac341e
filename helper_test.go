package fundora

import (
	"context"
	"strings"
	"sync"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// sheet returns n answers worth score points: it starts from all A and
// raises answers one letter at a time.
func sheet(n, score int) []Choice {
	answers := make([]Choice, n)
	for i := range answers {
		answers[i] = A
	}
	extra := score - n
	for i := 0; i < n && extra > 0; i++ {
		step := min(extra, int(E-A))
		answers[i] += Choice(step)
		extra -= step
	}
	return answers
}

// letters is a helper for test to write answer sheets compactly.
func letters(s string) []Choice {
	c, err := ParseChoices(s)
	if err != nil {
		panic(err)
	}
	return c
}

// repeat returns n times the choice c.
func repeat(c Choice, n int) []Choice { return letters(strings.Repeat(c.String(), n)) }
