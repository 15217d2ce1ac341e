package fundora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Keys under which the application state is stored.
const (
	UserKey     = "fundora_user"
	MessagesKey = "fundora_messages"
)

// ErrNotFound is returned by a KV for a missing key.
var ErrNotFound = errors.New("not found")

// KV is the key-value persistence the application state is kept in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// User is the signed-in user.
type User struct {
	Email              string  `json:"email"`
	Persona            Persona `json:"persona,omitempty"`
	OnboardingComplete bool    `json:"onboardingComplete"`
}

// NewUser returns a user that has not been onboarded yet.
func NewUser(email string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: %q is not an email address", ErrInvalidInput, email)
	}
	return &User{Email: email}, nil
}

// Name returns the local part of the email, used to greet the user.
func (u *User) Name() string {
	name, _, _ := strings.Cut(u.Email, "@")
	return name
}

// Onboard records the outcome of the quiz.
func (u *User) Onboard(r PersonaResult) {
	u.Persona = r.Persona
	u.OnboardingComplete = true
}

// LoadUser reads the user from kv. It returns nil and no error if there is
// none.
func LoadUser(ctx context.Context, kv KV) (*User, error) {
	data, err := kv.Get(ctx, UserKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load user: %w", err)
	}
	u := new(User)
	if err := json.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("cannot decode user: %w", err)
	}
	return u, nil
}

// SaveUser writes the user to kv.
func SaveUser(ctx context.Context, kv KV, u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, UserKey, data); err != nil {
		return fmt.Errorf("cannot save user: %w", err)
	}
	return nil
}

// ClearUser removes the user and the conversation from kv.
func ClearUser(ctx context.Context, kv KV) error {
	for _, key := range []string{UserKey, MessagesKey} {
		if err := kv.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("cannot clear %s: %w", key, err)
		}
	}
	return nil
}
