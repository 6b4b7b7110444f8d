package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("MAX_LIST_DEPTH", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("RUN_LOG_LIMIT", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default api port 8080, got %q", cfg.APIPort)
	}
	if cfg.NATSSubject != "inquiries.process" {
		t.Fatalf("expected default nats subject inquiries.process, got %q", cfg.NATSSubject)
	}
	if cfg.BucketName != "vendor-inquiries" {
		t.Fatalf("expected default bucket vendor-inquiries, got %q", cfg.BucketName)
	}
	if cfg.MaxListDepth != 6 {
		t.Fatalf("expected default list depth 6, got %d", cfg.MaxListDepth)
	}
	if cfg.SMTPPort != "587" {
		t.Fatalf("expected default smtp port 587, got %q", cfg.SMTPPort)
	}
	if cfg.RunLogLimit != 1000 {
		t.Fatalf("expected default run log limit 1000, got %d", cfg.RunLogLimit)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("BUCKET_PREFIX", "inbox/2026")
	t.Setenv("MAX_LIST_DEPTH", "3")
	t.Setenv("RUN_LOG_LIMIT", "250")

	cfg := Load()
	if cfg.APIPort != "9000" {
		t.Fatalf("expected api port override, got %q", cfg.APIPort)
	}
	if cfg.SupabaseURL != "https://project.supabase.co" {
		t.Fatalf("expected supabase url override, got %q", cfg.SupabaseURL)
	}
	if cfg.BucketPrefix != "inbox/2026" {
		t.Fatalf("expected bucket prefix override, got %q", cfg.BucketPrefix)
	}
	if cfg.MaxListDepth != 3 {
		t.Fatalf("expected list depth 3, got %d", cfg.MaxListDepth)
	}
	if cfg.RunLogLimit != 250 {
		t.Fatalf("expected run log limit 250, got %d", cfg.RunLogLimit)
	}
}

func TestLoadIgnoresUnparsableIntegers(t *testing.T) {
	t.Setenv("MAX_LIST_DEPTH", "very deep")

	cfg := Load()
	if cfg.MaxListDepth != 6 {
		t.Fatalf("expected fallback depth 6, got %d", cfg.MaxListDepth)
	}
}
