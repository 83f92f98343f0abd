package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalConfig = `
database:
  user: bridge
  database: card_bridge
chains:
  a:
    name: home
    rpc_url: https://rpc.home.example
    chain_id: 1
    endpoint_id: 30101
    token_address: "0x1111111111111111111111111111111111111111"
    oft_address: "0x2222222222222222222222222222222222222222"
    requires_approval: true
  b:
    name: remote
    rpc_url: https://rpc.remote.example
    chain_id: 8453
    endpoint_id: 30184
    token_address: "0x3333333333333333333333333333333333333333"
    oft_address: "0x3333333333333333333333333333333333333333"
oauth:
  redirect_uri: https://card.example/oauth/callback
  providers:
    x:
      enabled: true
      client_id: x-client
      client_secret_env: X_CLIENT_SECRET
`

func TestParseAPIServer_AppliesDefaults(t *testing.T) {
	cfg, err := ParseAPIServer([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Fatalf("expected default port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Bridge.ApprovalTimeout != 60*time.Second || cfg.Bridge.ConfirmTimeout != 60*time.Second {
		t.Fatalf("expected approval and confirm timeouts of 60s, got %s and %s",
			cfg.Bridge.ApprovalTimeout, cfg.Bridge.ConfirmTimeout)
	}
	if cfg.Server.RequestTimeout <= cfg.Bridge.TransferBudget() {
		t.Fatalf("default request timeout %s does not cover transfer budget %s",
			cfg.Server.RequestTimeout, cfg.Bridge.TransferBudget())
	}
	if cfg.Server.WriteTimeout <= cfg.Server.RequestTimeout {
		t.Fatalf("default write timeout %s does not outlive request timeout %s",
			cfg.Server.WriteTimeout, cfg.Server.RequestTimeout)
	}
	if cfg.OAuth.CleanupInterval != time.Hour || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected cleanup interval %s or rate limit window %s", cfg.OAuth.CleanupInterval, cfg.RateLimit.Window)
	}
	if cfg.OAuth.SessionTTL != 10*time.Minute {
		t.Fatalf("expected session ttl 10m, got %s", cfg.OAuth.SessionTTL)
	}
	if cfg.Chains.A.TokenDecimals != 18 {
		t.Fatalf("expected token decimals 18, got %d", cfg.Chains.A.TokenDecimals)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("expected ssl mode disable, got %q", cfg.Database.SSLMode)
	}
	if !cfg.Chains.A.RequiresApproval || cfg.Chains.B.RequiresApproval {
		t.Fatalf("unexpected requires_approval flags: a=%v b=%v", cfg.Chains.A.RequiresApproval, cfg.Chains.B.RequiresApproval)
	}
}

func TestParseAPIServer_KeepsExplicitValues(t *testing.T) {
	raw := minimalConfig + `
bridge:
  approval_timeout: 45s
  confirm_timeout: 30s
server:
  port: 9000
`
	cfg, err := ParseAPIServer([]byte(raw))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Bridge.ApprovalTimeout != 45*time.Second {
		t.Fatalf("expected approval timeout 45s, got %s", cfg.Bridge.ApprovalTimeout)
	}
	if cfg.Bridge.TransferBudget() != 76*time.Second {
		t.Fatalf("expected transfer budget 76s, got %s", cfg.Bridge.TransferBudget())
	}
	if cfg.Bridge.ConfirmTimeout != 30*time.Second {
		t.Fatalf("expected confirm timeout 30s, got %s", cfg.Bridge.ConfirmTimeout)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
}

func TestParseAPIServer_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name: "bad token address",
			mutate: func(s string) string {
				return strings.Replace(s, `token_address: "0x1111111111111111111111111111111111111111"`, `token_address: "not-an-address"`, 1)
			},
			wantErr: "TokenAddress",
		},
		{
			name: "enabled provider without client id",
			mutate: func(s string) string {
				return strings.Replace(s, "client_id: x-client", "client_id: \"\"", 1)
			},
			wantErr: "ClientID",
		},
		{
			name: "missing redirect uri",
			mutate: func(s string) string {
				return strings.Replace(s, "redirect_uri: https://card.example/oauth/callback", "redirect_uri: \"\"", 1)
			},
			wantErr: "RedirectURI",
		},
		{
			name: "request timeout shorter than confirm timeout",
			mutate: func(s string) string {
				return s + "server:\n  request_timeout: 30s\n"
			},
			wantErr: "request_timeout",
		},
		{
			name: "request timeout covers confirm but not approval plus confirm",
			mutate: func(s string) string {
				return s + "server:\n  request_timeout: 110s\n"
			},
			wantErr: "approval_timeout",
		},
		{
			name: "write timeout shorter than request timeout",
			mutate: func(s string) string {
				return s + "server:\n  write_timeout: 120s\n"
			},
			wantErr: "write_timeout",
		},
		{
			name: "negative cleanup interval",
			mutate: func(s string) string {
				return strings.Replace(s, "  redirect_uri:", "  cleanup_interval: -1m\n  redirect_uri:", 1)
			},
			wantErr: "CleanupInterval",
		},
		{
			name: "negative rate limit window",
			mutate: func(s string) string {
				return s + "rate_limit:\n  window: -5s\n"
			},
			wantErr: "Window",
		},
		{
			name: "negative confirm timeout",
			mutate: func(s string) string {
				return s + "bridge:\n  confirm_timeout: -1s\n"
			},
			wantErr: "ConfirmTimeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAPIServer([]byte(tt.mutate(minimalConfig)))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadAPIServer_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalConfig), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Chains.B.Name != "remote" {
		t.Fatalf("expected chain b name %q, got %q", "remote", cfg.Chains.B.Name)
	}

	if _, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}

	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	_ = logger.Sync()
}
