package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type linkAddCmd struct{}

func (linkAddCmd) Name() string        { return "link-add" }
func (linkAddCmd) Description() string { return "Add a link to your profile" }
func (linkAddCmd) Usage() string       { return "link-add <title> <url>" }

func (linkAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	title, linkURL := args[0], args[1]
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
		_, err := env.API.CreateLink(ctx, api.LinkPayload{Title: title, URL: linkURL})
		return err
	})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to create link. Please try again."))
	}
	fmt.Fprintln(Out, "Link created successfully!")

	list, err := links.Get(ctx)
	if err != nil {
		return err
	}
	printLinks(list)
	return nil
}

func init() { RegisterCmd(linkAddCmd{}) }
