package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type linkEditCmd struct{}

func (linkEditCmd) Name() string        { return "link-edit" }
func (linkEditCmd) Description() string { return "Replace a link's title and URL" }
func (linkEditCmd) Usage() string       { return "link-edit <id> <title> <url>" }

func (linkEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	id, title, linkURL := args[0], args[1], args[2]
	if errs := linkForm().Validate(map[string]string{"title": title, "url": linkURL}); !errs.Ok() {
		return errs
	}

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
		_, err := env.API.UpdateLink(ctx, id, api.LinkPayload{Title: title, URL: linkURL})
		return err
	})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to update link. Please try again."))
	}
	fmt.Fprintln(Out, "Link updated successfully!")

	list, err := links.Get(ctx)
	if err != nil {
		return err
	}
	printLinks(list)
	return nil
}

func init() { RegisterCmd(linkEditCmd{}) }
