package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/Brhansenane/repopush/pkg/cli/config"
	"github.com/Brhansenane/repopush/pkg/infra/credential"
	githubinfra "github.com/Brhansenane/repopush/pkg/infra/github"
	"github.com/Brhansenane/repopush/pkg/usecase"
)

func cmdRepos() *cli.Command {
	var (
		githubCfg config.GitHub
		limit     int
	)

	flags := append(githubCfg.Flags(),
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of repositories to list",
			Value:       10,
			Destination: &limit,
		},
	)

	return &cli.Command{
		Name:  "repos",
		Usage: "List your most recently updated repositories",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := credential.NewFileStore()
			if err != nil {
				return err
			}

			uc := usecase.NewRepositoryList(store, githubinfra.NewFactory(githubCfg.ClientOptions()...))
			repos, err := uc.RecentRepositories(ctx, int(limit))
			if err != nil {
				return err
			}

			for _, r := range repos {
				access := "public"
				if r.Private {
					access = "private"
				}
				fmt.Printf("%s  %s\n", r.FullName, color.HiBlackString("(%s)", access))
			}
			return nil
		},
	}
}
