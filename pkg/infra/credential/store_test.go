package credential_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Brhansenane/repopush/pkg/infra/credential"
)

func newTestStore(t *testing.T) (*credential.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credential.toml")
	store, err := credential.NewFileStore(credential.WithPath(path))
	gt.NoError(t, err)
	return store, path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REPOPUSH_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("REPOPUSH_GITHUB_LOGIN", "")
}

func TestFileStore_GetAbsent(t *testing.T) {
	clearEnv(t)
	store, _ := newTestStore(t)

	cred, err := store.Get(context.Background())
	gt.NoError(t, err)
	gt.Value(t, cred).Nil()
}

func TestFileStore_GetStored(t *testing.T) {
	clearEnv(t)
	store, path := newTestStore(t)

	content := `token = "ghp_storedtoken"

[identity]
login = "alice"
display_name = "Alice"
avatar_url = "https://example.com/a.png"
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cred, err := store.Get(context.Background())
	gt.NoError(t, err)
	gt.Value(t, cred).NotNil()
	gt.Value(t, cred.Identity.Login).Equal("alice")
	gt.Value(t, cred.Identity.DisplayName).Equal("Alice")
	gt.Value(t, cred.Token).Equal("ghp_storedtoken")
	gt.Value(t, cred.Usable()).Equal(true)
}

func TestFileStore_GetMalformed(t *testing.T) {
	clearEnv(t)
	store, path := newTestStore(t)

	gt.NoError(t, os.WriteFile(path, []byte("not toml at all {{{"), 0600))

	_, err := store.Get(context.Background())
	gt.Error(t, err)
}

func TestFileStore_Clear(t *testing.T) {
	clearEnv(t)
	store, path := newTestStore(t)

	gt.NoError(t, os.WriteFile(path, []byte(`token = "ghp_x"`), 0600))
	gt.NoError(t, store.Clear(context.Background()))

	_, err := os.Stat(path)
	gt.Value(t, os.IsNotExist(err)).Equal(true)

	// Clearing an already-empty store is not an error.
	gt.NoError(t, store.Clear(context.Background()))

	cred, err := store.Get(context.Background())
	gt.NoError(t, err)
	gt.Value(t, cred).Nil()
}

func TestFileStore_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPOPUSH_GITHUB_TOKEN", "ghp_envtoken")
	t.Setenv("REPOPUSH_GITHUB_LOGIN", "envuser")

	store, _ := newTestStore(t)
	cred, err := store.Get(context.Background())
	gt.NoError(t, err)
	gt.Value(t, cred).NotNil()
	gt.Value(t, cred.Identity.Login).Equal("envuser")
	gt.Value(t, cred.Token).Equal("ghp_envtoken")
}

func TestFileStore_EnvOverrideRequiresLogin(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_envtoken")

	store, _ := newTestStore(t)
	cred, err := store.Get(context.Background())
	gt.NoError(t, err)
	// Token without a login cannot drive repository lookups; fall through to the file.
	gt.Value(t, cred).Nil()
}
