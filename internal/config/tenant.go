package config

import (
	"fmt"
	"regexp"
	"strings"
)

// TenantConfig resolves workspace subdomains for multi-tenant routing.
// A workspace host looks like <slug>.crm.<domain>; anything else must be
// on the allow-list or the request is refused.
type TenantConfig struct {
	pattern      *regexp.Regexp
	allowedHosts map[string]bool
}

// NewTenantConfig compiles the workspace host pattern. The pattern must
// contain exactly one capture group holding the workspace slug.
func NewTenantConfig(pattern string, allowedHosts []string) (*TenantConfig, error) {
	if pattern == "" {
		pattern = `^([a-zA-Z0-9-]+)\.crm\.[a-zA-Z0-9.-]+$`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("workspace pattern must capture the slug, got %d groups", re.NumSubexp())
	}

	allowed := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		allowed[strings.ToLower(h)] = true
	}

	return &TenantConfig{pattern: re, allowedHosts: allowed}, nil
}

// ResolveWorkspace extracts the workspace slug from a request host.
// The second return is false when the host is neither a workspace
// subdomain nor an allow-listed host.
func (t *TenantConfig) ResolveWorkspace(host string) (string, bool) {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	if m := t.pattern.FindStringSubmatch(host); m != nil {
		return m[1], true
	}
	if t.allowedHosts[host] {
		return "", true
	}
	return "", false
}
