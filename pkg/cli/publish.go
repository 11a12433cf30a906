package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Brhansenane/repopush/pkg/cli/config"
	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/infra/credential"
	githubinfra "github.com/Brhansenane/repopush/pkg/infra/github"
	"github.com/Brhansenane/repopush/pkg/infra/workspace"
	"github.com/Brhansenane/repopush/pkg/usecase"
)

func cmdPublish() *cli.Command {
	var (
		githubCfg  config.GitHub
		dir        string
		name       string
		visibility string
		assumeYes  bool
	)

	flags := append(githubCfg.Flags(),
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Workspace directory to publish",
			Value:       ".",
			Destination: &dir,
		},
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Target repository name",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "visibility",
			Usage:       "Repository visibility at creation time (public, private)",
			Value:       "private",
			Destination: &visibility,
		},
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "Overwrite an existing repository without prompting",
			Destination: &assumeYes,
		},
	)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Publish a local directory to a GitHub repository",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			vis, err := model.ParseVisibility(visibility)
			if err != nil {
				return err
			}

			store, err := credential.NewFileStore()
			if err != nil {
				return err
			}

			files, root, err := workspace.Snapshot(dir)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("publishing workspace",
				"dir", root,
				"repository_name", name,
				"visibility", vis,
				"file_count", len(files),
			)

			uc := usecase.NewPublish(store, githubinfra.NewFactory(githubCfg.ClientOptions()...))

			confirm := confirmPrompt(assumeYes)
			outcome := uc.Publish(ctx, name, vis, files, root, confirm)
			renderSummary(uc.Summarize(outcome))

			if outcome.Kind == model.OutcomeFailed {
				return goerr.New("publish failed",
					goerr.V("category", outcome.Category),
				)
			}
			return nil
		},
	}
}

// confirmPrompt returns the overwrite decision function: auto-approve when
// --yes was given, otherwise an interactive y/N prompt on stdin.
func confirmPrompt(assumeYes bool) func(ctx context.Context, repo *model.RemoteRepository) (bool, error) {
	return func(ctx context.Context, repo *model.RemoteRepository) (bool, error) {
		if assumeYes {
			return true, nil
		}

		fmt.Printf("Repository %s already exists. Overwrite its contents? [y/N]: ", repo.FullName)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// renderSummary prints the publish summary for terminal users.
func renderSummary(summary *model.Summary) {
	title := color.New(color.FgGreen, color.Bold)
	switch summary.Kind {
	case model.OutcomeFailed:
		title = color.New(color.FgRed, color.Bold)
	case model.OutcomeBlocked, model.OutcomeCancelled:
		title = color.New(color.FgYellow, color.Bold)
	}

	title.Println(summary.Title)
	fmt.Println(summary.Message)

	if summary.RepositoryURL != "" {
		fmt.Printf("\n  %s\n", color.CyanString(summary.RepositoryURL))
	}
	if len(summary.Files) > 0 {
		fmt.Println()
		for _, f := range summary.Files {
			fmt.Printf("  %s (%s)\n", f.Path, color.HiBlackString(f.Size))
		}
	}
}
