package credential

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/Brhansenane/repopush/pkg/domain/model"
)

// Environment variables that override the credential file. Both the token
// and the login must be present for the override to apply: the publish
// pipeline needs the owner login for repository lookups.
var (
	tokenEnvVars = []string{"REPOPUSH_GITHUB_TOKEN", "GITHUB_TOKEN"}
	loginEnvVar  = "REPOPUSH_GITHUB_LOGIN"
)

// FileStore persists the GitHub connection as a TOML file under the user
// config directory. Writing credentials is handled by the external
// authentication flow; this store only reads and clears.
type FileStore struct {
	path string
}

// Option is a functional option for FileStore construction
type Option func(*FileStore)

// WithPath overrides the credential file location (tests).
func WithPath(path string) Option {
	return func(s *FileStore) {
		s.path = path
	}
}

// NewFileStore creates a store rooted at the user config directory.
func NewFileStore(opts ...Option) (*FileStore, error) {
	s := &FileStore{}
	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to locate user config directory")
		}
		s.path = filepath.Join(dir, "repopush", "credential.toml")
	}

	return s, nil
}

// Get returns the stored credential, or (nil, nil) when none exists. The
// environment override takes precedence over the file.
func (s *FileStore) Get(ctx context.Context) (*model.Credential, error) {
	if cred := fromEnv(); cred != nil {
		return cred, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read credential file",
			goerr.V("path", s.path),
		)
	}

	var cred model.Credential
	if err := toml.Unmarshal(data, &cred); err != nil {
		return nil, goerr.Wrap(err, "failed to parse credential file",
			goerr.V("path", s.path),
		)
	}

	return &cred, nil
}

// Clear removes the stored credential so the next attempt forces
// re-authentication. Clearing cannot undo an environment override.
func (s *FileStore) Clear(ctx context.Context) error {
	if fromEnv() != nil {
		ctxlog.From(ctx).Warn("credential supplied via environment; unset the variable to clear it")
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove credential file",
			goerr.V("path", s.path),
		)
	}
	return nil
}

func fromEnv() *model.Credential {
	login := os.Getenv(loginEnvVar)
	if login == "" {
		return nil
	}
	for _, key := range tokenEnvVars {
		if token := os.Getenv(key); token != "" {
			return &model.Credential{
				Identity: model.Identity{Login: login},
				Token:    token,
			}
		}
	}
	return nil
}
