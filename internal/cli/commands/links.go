package commands

import (
	"context"
	"fmt"

	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/collection"
	"Insightly/internal/cli/forms"
	"Insightly/internal/cli/model"
	"Insightly/internal/config"
)

// linksCollection builds the cached links list for one command run. Every
// successful mutation invalidates it, so the follow-up listing always shows
// the server's current set.
func linksCollection(env *bootstrap.Env) *collection.Collection[model.LinkItem] {
	return collection.New("links", env.API.MyLinks)
}

func linkForm() forms.Form {
	return forms.Form{Fields: []forms.Field{
		{Name: "title", Rules: []forms.Rule{forms.Required("Title is required")}},
		{Name: "url", Rules: []forms.Rule{
			forms.Required("URL is required"),
			forms.Pattern(forms.URLPattern, "Invalid URL"),
		}},
	}}
}

func printLinks(links []model.LinkItem) {
	if len(links) == 0 {
		fmt.Fprintln(Out, "No links yet")
		return
	}
	for _, l := range links {
		fmt.Fprintf(Out, "- %s  %s  %s\n", l.ID, l.Title, l.URL)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(links))
}

type linksCmd struct{}

func (linksCmd) Name() string        { return "links" }
func (linksCmd) Description() string { return "List your links" }
func (linksCmd) Usage() string       { return "links" }

func (linksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := env.RequireAuth(); err != nil {
		return err
	}

	links, err := linksCollection(env).Get(ctx)
	if err != nil {
		return err
	}
	printLinks(links)
	return nil
}

func init() { RegisterCmd(linksCmd{}) }
