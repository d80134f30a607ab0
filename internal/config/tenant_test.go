package config

import "testing"

func TestTenantConfig_ResolveWorkspace(t *testing.T) {
	tenant, err := NewTenantConfig(`^([a-zA-Z0-9-]+)\.crm\.example\.com$`, []string{"app.example.com", "localhost"})
	if err != nil {
		t.Fatalf("NewTenantConfig: %v", err)
	}

	tests := []struct {
		name      string
		host      string
		wantSlug  string
		wantOK    bool
	}{
		{name: "workspace subdomain", host: "acme.crm.example.com", wantSlug: "acme", wantOK: true},
		{name: "hyphenated slug", host: "north-shore.crm.example.com", wantSlug: "north-shore", wantOK: true},
		{name: "host with port", host: "acme.crm.example.com:8080", wantSlug: "acme", wantOK: true},
		{name: "case is normalised", host: "ACME.crm.example.com", wantSlug: "acme", wantOK: true},
		{name: "allow-listed host", host: "app.example.com", wantSlug: "", wantOK: true},
		{name: "localhost allow-listed", host: "localhost:3000", wantSlug: "", wantOK: true},
		{name: "nested subdomain rejected", host: "a.b.crm.example.com", wantSlug: "", wantOK: false},
		{name: "unknown host rejected", host: "evil.example.org", wantSlug: "", wantOK: false},
		{name: "bare domain rejected", host: "crm.example.com", wantSlug: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, ok := tenant.ResolveWorkspace(tt.host)
			if ok != tt.wantOK {
				t.Errorf("ResolveWorkspace(%q) ok = %v, want %v", tt.host, ok, tt.wantOK)
			}
			if slug != tt.wantSlug {
				t.Errorf("ResolveWorkspace(%q) slug = %q, want %q", tt.host, slug, tt.wantSlug)
			}
		})
	}
}

func TestNewTenantConfig_Validation(t *testing.T) {
	if _, err := NewTenantConfig("[invalid", nil); err == nil {
		t.Error("expected error for invalid regexp")
	}
	if _, err := NewTenantConfig(`^nocapture\.crm\.example\.com$`, nil); err == nil {
		t.Error("expected error for pattern without a capture group")
	}
	if _, err := NewTenantConfig("", nil); err != nil {
		t.Errorf("default pattern should compile, got %v", err)
	}
}
