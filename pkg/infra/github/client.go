package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/Brhansenane/repopush/pkg/domain/interfaces"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/domain/types"
)

type client struct {
	gh *github.Client
}

// Option is a functional option for client construction
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL points the client at a different API endpoint (tests, GitHub
// Enterprise). The URL is given without the trailing slash.
func WithBaseURL(raw string) Option {
	return func(o *options) {
		o.baseURL = raw
	}
}

// WithHTTPClient overrides the underlying HTTP client. Intended for tests;
// it bypasses the oauth2 token transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// NewClient creates a RepositoryService bound to the given credential.
func NewClient(cred *model.Credential, opts ...Option) interfaces.RepositoryService {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cred.Token})
		hc = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(hc)
	if o.baseURL != "" {
		if u, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/"); err == nil {
			gh.BaseURL = u
			gh.UploadURL = u
		}
	}

	return &client{gh: gh}
}

// NewFactory returns a RepositoryServiceFactory so the pipeline can build a
// per-attempt client from an explicitly passed credential.
func NewFactory(opts ...Option) interfaces.RepositoryServiceFactory {
	return func(cred *model.Credential) interfaces.RepositoryService {
		return NewClient(cred, opts...)
	}
}

// GetRepository looks up repository metadata. A 404 comes back tagged
// ErrTagNotFound so the resolver can distinguish it from other failures.
func (c *client) GetRepository(ctx context.Context, owner, name string) (*model.RemoteRepository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, classify(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}
	return toRemoteRepository(repo), nil
}

// CreateRepository creates a repository under the authenticated user.
func (c *client) CreateRepository(ctx context.Context, name string, private bool) (*model.RemoteRepository, error) {
	repo, _, err := c.gh.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.Ptr(name),
		Private: github.Ptr(private),
	})
	if err != nil {
		return nil, classify(err, "failed to create repository",
			goerr.V("name", name),
		)
	}
	return toRemoteRepository(repo), nil
}

// PutFileContents ensures content exists at path on branch. An existing file
// is updated with its current SHA; a 409 conflict is retried once after
// re-fetching the SHA.
func (c *client) PutFileContents(ctx context.Context, owner, name, path string, content []byte, branch string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr("Publish " + path),
		Content: content,
		Branch:  github.Ptr(branch),
	}

	existing, _, _, err := c.gh.Repositories.GetContents(ctx, owner, name, path, &github.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			if _, _, err := c.gh.Repositories.CreateFile(ctx, owner, name, path, opts); err != nil {
				return classify(err, "failed to create file", goerr.V("path", path))
			}
			return nil
		}
		return classify(err, "failed to check existing file", goerr.V("path", path))
	}

	opts.SHA = existing.SHA
	if _, _, err := c.gh.Repositories.UpdateFile(ctx, owner, name, path, opts); err != nil {
		if statusOf(err) != http.StatusConflict {
			return classify(err, "failed to update file", goerr.V("path", path))
		}
		// File changed since the SHA was fetched. Re-fetch and retry once.
		existing, _, _, err2 := c.gh.Repositories.GetContents(ctx, owner, name, path, &github.RepositoryContentGetOptions{Ref: branch})
		if err2 != nil {
			return classify(err, "failed to update file", goerr.V("path", path))
		}
		opts.SHA = existing.SHA
		if _, _, err := c.gh.Repositories.UpdateFile(ctx, owner, name, path, opts); err != nil {
			return classify(err, "failed to update file", goerr.V("path", path))
		}
	}
	return nil
}

// ListRecentRepositories returns the authenticated user's repositories
// ordered by last update.
func (c *client) ListRecentRepositories(ctx context.Context, limit int) ([]*model.RemoteRepository, error) {
	repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, classify(err, "failed to list repositories")
	}

	out := make([]*model.RemoteRepository, 0, len(repos))
	for _, r := range repos {
		out = append(out, toRemoteRepository(r))
	}
	return out, nil
}

func toRemoteRepository(r *github.Repository) *model.RemoteRepository {
	return &model.RemoteRepository{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		HTMLURL:       r.GetHTMLURL(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
	}
}

// statusOf extracts the HTTP status code from a go-github error, or 0 for
// transport-level failures.
func statusOf(err error) int {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}

// classify wraps a remote error with exactly one category tag: 401 is an
// authentication failure, 404 a not-found signal, 5xx and transport errors
// are remote-unavailable, remaining 4xx are remote-rejected.
func classify(err error, msg string, extra ...goerr.Option) error {
	code := statusOf(err)

	var tag goerr.Option
	switch {
	case code == http.StatusUnauthorized:
		tag = goerr.T(types.ErrTagAuthExpired)
	case code == http.StatusNotFound:
		tag = goerr.T(types.ErrTagNotFound)
	case code >= http.StatusInternalServerError || code == 0:
		tag = goerr.T(types.ErrTagRemoteUnavailable)
	default:
		tag = goerr.T(types.ErrTagRemoteRejected)
	}

	opts := append([]goerr.Option{tag, goerr.V("status_code", code)}, extra...)
	return goerr.Wrap(err, msg, opts...)
}
