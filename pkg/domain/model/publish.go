package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Visibility controls repository access at creation time. It has no effect
// when publishing into an existing repository.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility parses a user-supplied visibility string. Empty defaults to private.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(VisibilityPrivate):
		return VisibilityPrivate, nil
	case string(VisibilityPublic):
		return VisibilityPublic, nil
	default:
		return "", goerr.New("invalid visibility", goerr.V("value", s))
	}
}

// Private reports whether the repository should be created as private.
func (v Visibility) Private() bool {
	return v != VisibilityPublic
}

// PublishRequest describes one user-initiated publish attempt. It is
// constructed fresh per attempt and not mutated once the pipeline starts.
type PublishRequest struct {
	RepositoryName string
	Visibility     Visibility
	Credential     *Credential
}

// Validate checks the locally verifiable parts of the request.
func (r *PublishRequest) Validate() error {
	if strings.TrimSpace(r.RepositoryName) == "" {
		return goerr.New("repository name is empty")
	}
	return nil
}
