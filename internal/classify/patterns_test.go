package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPatternsEmptyPathReturnsDefaults(t *testing.T) {
	p, err := LoadPatterns("")
	if err != nil {
		t.Fatalf("LoadPatterns: %v", err)
	}
	if len(p.Keywords) == 0 || len(p.InvoicePatterns) == 0 {
		t.Fatalf("expected default rule set, got %+v", p)
	}
}

func TestLoadPatternsOverridesKeywordsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := "keywords:\n  - zahlungsstatus\n  - mahnung\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	p, err := LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns: %v", err)
	}
	if len(p.Keywords) != 2 || p.Keywords[0] != "zahlungsstatus" {
		t.Fatalf("keywords not overridden: %v", p.Keywords)
	}
	if len(p.InvoicePatterns) != len(DefaultPatterns().InvoicePatterns) {
		t.Fatalf("invoice patterns should fall back to defaults")
	}
}

func TestLoadPatternsRejectsInvalidRegexp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := "invoice_patterns:\n  - '(['\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := LoadPatterns(path); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestLoadPatternsMissingFile(t *testing.T) {
	if _, err := LoadPatterns(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
