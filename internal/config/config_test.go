package config

import (
	"testing"
	"time"

	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CHAT_REPLY_MIN_DELAY", "CHAT_REPLY_MAX_DELAY", "CONTACT_SUBMIT_DELAY", "CONTACT_DB_PATH", "OWNER_NAME", "CORS_ALLOWED_ORIGINS", "ADMIN_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Chat.MinReplyDelay != time.Second || cfg.Chat.MaxReplyDelay != 2*time.Second {
		t.Fatalf("unexpected reply delay bounds %s..%s", cfg.Chat.MinReplyDelay, cfg.Chat.MaxReplyDelay)
	}
	if cfg.Contact.SubmitDelay != 2*time.Second {
		t.Fatalf("unexpected submit delay %s", cfg.Contact.SubmitDelay)
	}
	if cfg.Owner != knowledge.DefaultOwner {
		t.Fatalf("unexpected owner %q", cfg.Owner)
	}
	if cfg.Contact.AdminToken != "" {
		t.Fatalf("admin token should default to empty, got %q", cfg.Contact.AdminToken)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadPortWithHost(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
}

func TestLoadRejectsInvertedDelays(t *testing.T) {
	t.Setenv("CHAT_REPLY_MIN_DELAY", "3s")
	t.Setenv("CHAT_REPLY_MAX_DELAY", "1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for inverted delay bounds")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CONTACT_SUBMIT_DELAY", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadAdminToken(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "  s3cret ")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Contact.AdminToken != "s3cret" {
		t.Fatalf("unexpected admin token %q", cfg.Contact.AdminToken)
	}
}
