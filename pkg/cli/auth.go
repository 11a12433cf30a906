package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/Brhansenane/repopush/pkg/infra/credential"
)

func cmdAuth() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Inspect or clear the stored GitHub connection",
		Commands: []*cli.Command{
			cmdAuthStatus(),
			cmdAuthClear(),
		},
	}
}

func cmdAuthStatus() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the stored GitHub connection",
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := credential.NewFileStore()
			if err != nil {
				return err
			}

			cred, err := store.Get(ctx)
			if err != nil {
				return err
			}
			if !cred.Usable() {
				color.Yellow("No GitHub connection stored.")
				return nil
			}

			fmt.Printf("Connected as %s", cred.Identity.Login)
			if cred.Identity.DisplayName != "" {
				fmt.Printf(" (%s)", cred.Identity.DisplayName)
			}
			fmt.Printf("\nToken: %s\n", cred.RedactedToken())
			return nil
		},
	}
}

func cmdAuthClear() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove the stored GitHub connection",
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := credential.NewFileStore()
			if err != nil {
				return err
			}
			if err := store.Clear(ctx); err != nil {
				return err
			}
			fmt.Println("GitHub connection cleared.")
			return nil
		},
	}
}
