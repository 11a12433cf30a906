package model

import "strings"

// Identity is the remote account the credential belongs to
type Identity struct {
	Login       string `json:"login" toml:"login"`
	DisplayName string `json:"display_name" toml:"display_name"`
	AvatarURL   string `json:"avatar_url" toml:"avatar_url"`
}

// Credential is a borrowed, read-only copy of the stored GitHub connection.
// The token is tagged for masq so it is redacted from every log record.
type Credential struct {
	Identity Identity `json:"identity" toml:"identity"`
	Token    string   `json:"-" toml:"token" masq:"secret"`
}

// Usable reports whether the credential can authenticate a remote call.
// A token that is empty after trimming is treated as absent.
func (c *Credential) Usable() bool {
	return c != nil && strings.TrimSpace(c.Token) != ""
}

// RedactedToken returns a short prefix for explicit display surfaces such as
// `auth status`. It must never be used in log output.
func (c *Credential) RedactedToken() string {
	if c == nil || c.Token == "" {
		return ""
	}
	const visible = 4
	if len(c.Token) <= visible {
		return "****"
	}
	return c.Token[:visible] + "****"
}
