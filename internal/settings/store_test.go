package settings_test

import (
	"path/filepath"
	"testing"

	"criticdeck/internal/settings"
)

func openStore(t *testing.T, dir string) *settings.Store {
	t.Helper()
	store, err := settings.Open(filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := settings.Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestGetFallbackWhenAbsent(t *testing.T) {
	store := openStore(t, t.TempDir())
	if got := store.Get("theme", "dark"); got != "dark" {
		t.Fatalf("Get = %v, want fallback dark", got)
	}
}

func TestSetThenGet(t *testing.T) {
	store := openStore(t, t.TempDir())
	if err := store.Set("preferred_platform", "PS5"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := store.Get("preferred_platform", "PC"); got != "PS5" {
		t.Fatalf("Get = %v, want PS5", got)
	}
}

func TestSetRejectsEmptyKey(t *testing.T) {
	store := openStore(t, t.TempDir())
	if err := store.Set("   ", true); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, dir)
	if err := store.Set("badge_enabled", true); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened := openStore(t, dir)
	if got := reopened.Get("badge_enabled", false); got != true {
		t.Fatalf("Get after reopen = %v, want true", got)
	}
}

func TestKeysListsStoredKeys(t *testing.T) {
	store := openStore(t, t.TempDir())
	if err := store.Set("a", 1); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set("b", 2); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := len(store.Keys()); got != 2 {
		t.Fatalf("Keys length = %d, want 2", got)
	}
}
