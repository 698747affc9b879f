package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type linkDelCmd struct{}

func (linkDelCmd) Name() string        { return "link-del" }
func (linkDelCmd) Description() string { return "Delete a link" }
func (linkDelCmd) Usage() string       { return "link-del <id>" }

func (linkDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id := args[0]

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := env.RequireAuth(); err != nil {
		return err
	}

	links := linksCollection(env)
	err = links.Mutate(ctx, func(ctx context.Context) error {
		return env.API.DeleteLink(ctx, id)
	})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to delete link. Please try again."))
	}
	fmt.Fprintln(Out, "Link deleted successfully!")

	list, err := links.Get(ctx)
	if err != nil {
		return err
	}
	printLinks(list)
	return nil
}

func init() { RegisterCmd(linkDelCmd{}) }
