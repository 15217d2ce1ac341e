package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/etnz/fundora"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir, err := NewDir(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("NewDir() unexpected error: %v", err)
	}
	db, err := NewSQLite(filepath.Join(t.TempDir(), "fundora.db"))
	if err != nil {
		t.Fatalf("NewSQLite() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Store{"dir": dir, "sqlite": db}
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(ctx, "missing"); !errors.Is(err, fundora.ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want %v", err, fundora.ErrNotFound)
			}
			if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set() unexpected error: %v", err)
			}
			if err := s.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Set() overwrite unexpected error: %v", err)
			}
			got, err := s.Get(ctx, "k")
			if err != nil {
				t.Fatalf("Get() unexpected error: %v", err)
			}
			if string(got) != `{"a":2}` {
				t.Errorf("Get() = %s, want %s", got, `{"a":2}`)
			}
			if err := s.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete() unexpected error: %v", err)
			}
			if err := s.Delete(ctx, "k"); !errors.Is(err, fundora.ErrNotFound) {
				t.Errorf("Delete() twice error = %v, want %v", err, fundora.ErrNotFound)
			}
			if _, err := s.Get(ctx, "k"); !errors.Is(err, fundora.ErrNotFound) {
				t.Errorf("Get() after Delete() error = %v, want %v", err, fundora.ErrNotFound)
			}
		})
	}
}

func TestStore_User(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			u, _ := fundora.NewUser("meera@example.com")
			u.Persona = fundora.Planner
			u.OnboardingComplete = true
			if err := fundora.SaveUser(ctx, s, u); err != nil {
				t.Fatalf("SaveUser() unexpected error: %v", err)
			}
			got, err := fundora.LoadUser(ctx, s)
			if err != nil || got == nil || *got != *u {
				t.Errorf("LoadUser() = %v, %v, want %v", got, err, u)
			}
			if err := fundora.ClearUser(ctx, s); err != nil {
				t.Fatalf("ClearUser() unexpected error: %v", err)
			}
			if got, _ := fundora.LoadUser(ctx, s); got != nil {
				t.Errorf("LoadUser() after ClearUser() = %v, want nil", got)
			}
		})
	}
}

func TestStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := s.Set(ctx, "shared", []byte("value")); err != nil {
						t.Errorf("Set() unexpected error: %v", err)
					}
					if _, err := s.Get(ctx, "shared"); err != nil {
						t.Errorf("Get() unexpected error: %v", err)
					}
				}()
			}
			wg.Wait()
		})
	}
}

func TestDir_InvalidKey(t *testing.T) {
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir() unexpected error: %v", err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := d.Set(context.Background(), key, nil); !errors.Is(err, fundora.ErrInvalidInput) {
			t.Errorf("Set(%q) error = %v, want %v", key, err, fundora.ErrInvalidInput)
		}
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		driver, path string
		want         string
		wantErr      bool
	}{
		{driver: "", path: "state", want: "*store.Dir"},
		{driver: "", path: "fundora.db", want: "*store.SQLite"},
		{driver: "", path: "fundora.SQLITE", want: "*store.SQLite"},
		{driver: DriverDir, path: "x.db", want: "*store.Dir"},
		{driver: DriverSQLite, path: "x", want: "*store.SQLite"},
		{driver: "redis", path: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.driver+":"+tt.path, func(t *testing.T) {
			s, err := Open(tt.driver, filepath.Join(t.TempDir(), tt.path))
			if tt.wantErr {
				if !errors.Is(err, fundora.ErrInvalidInput) {
					t.Errorf("Open() error = %v, want %v", err, fundora.ErrInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			defer s.Close()
			if got := typeName(s); got != tt.want {
				t.Errorf("Open() = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(s Store) string {
	switch s.(type) {
	case *Dir:
		return "*store.Dir"
	case *SQLite:
		return "*store.SQLite"
	}
	return "unknown"
}
