package commands

import (
	"context"
	"fmt"

	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type viewCmd struct{}

func (viewCmd) Name() string        { return "view" }
func (viewCmd) Description() string { return "View a public profile and its links" }
func (viewCmd) Usage() string       { return "view <username>" }

func (viewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	username := args[0]

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	// any lookup failure renders as not-found, 404 or otherwise
	u, err := env.API.PublicProfile(ctx, username)
	if err != nil {
		return fmt.Errorf("profile %q not found", username)
	}
	links, err := env.API.PublicLinks(ctx, username)
	if err != nil {
		return fmt.Errorf("profile %q not found", username)
	}

	fmt.Fprintf(Out, "%s (@%s)\n", u.Name, u.Username)
	if u.Bio != "" {
		fmt.Fprintln(Out, u.Bio)
	}
	fmt.Fprintln(Out)
	printLinks(links)
	return nil
}

func init() { RegisterCmd(viewCmd{}) }
