package config

import (
	"github.com/urfave/cli/v3"

	githubinfra "github.com/Brhansenane/repopush/pkg/infra/github"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("REPOPUSH_GITHUB_BASE_URL"),
		},
	}
}

// ClientOptions returns the infra client options implied by the configuration.
func (c *GitHub) ClientOptions() []githubinfra.Option {
	var opts []githubinfra.Option
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}
	return opts
}
