package braciole

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels()
	if labels.Prev != "BACK" || labels.Next != "NEXT" || labels.Select != "SELECT" {
		t.Fatalf("stock labels = %+v", labels)
	}
	if labels.Leftmost != "LEFT" || labels.Rightmost != "RIGHT" {
		t.Fatalf("stock side labels = %+v", labels)
	}
}

func TestLoadTranslations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.de.toml")
	content := `
[button.prev]
other = "ZURUECK"

[button.select]
other = "OK"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTranslations(path); err != nil {
		t.Fatalf("LoadTranslations: %v", err)
	}
	SetLocale("de")
	defer SetLocale("en")

	labels := DefaultLabels()
	if labels.Prev != "ZURUECK" {
		t.Errorf("prev = %q, want translated label", labels.Prev)
	}
	if labels.Select != "OK" {
		t.Errorf("select = %q, want translated label", labels.Select)
	}
	// Messages without a translation fall back to the stock text.
	if labels.Next != "NEXT" {
		t.Errorf("next = %q, want fallback", labels.Next)
	}
}

func TestLoadTranslationsMissingFile(t *testing.T) {
	err := LoadTranslations("/nonexistent/active.fr.toml")
	if err == nil {
		t.Fatal("missing file accepted")
	}
	if !IsInfrastructureError(err) {
		t.Errorf("err = %v, want infrastructure error", err)
	}
}
