package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	entries, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("embedded wordlist is empty")
	}
	for _, e := range entries {
		if e == "" || strings.HasPrefix(e, "#") {
			t.Errorf("unexpected entry %q", e)
		}
	}
}

func TestLoadCustomFileDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "admin\n\n# comment\nlogin\nadmin\n  backup  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"admin", "login", "backup"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing wordlist")
	}
}

func TestMaterializeEmbedded(t *testing.T) {
	dir := t.TempDir()
	path, err := Materialize("", dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "admin") {
		t.Error("materialized wordlist missing expected entry")
	}
}

func TestMaterializePassesThroughExistingFile(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.txt")
	if err := os.WriteFile(custom, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path, err := Materialize(custom, "")
	if err != nil {
		t.Fatal(err)
	}
	if path != custom {
		t.Errorf("got %q, want %q", path, custom)
	}

	if _, err := Materialize(filepath.Join(t.TempDir(), "nope.txt"), ""); err == nil {
		t.Error("expected error for missing custom wordlist")
	}
}
