package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/model"
	"Insightly/internal/config"
)

func printFeedbacks(page *model.FeedbackPage) {
	if len(page.Data) == 0 {
		fmt.Fprintln(Out, "No feedback yet")
		return
	}
	for _, f := range page.Data {
		visibility := "private"
		if f.IsPublic {
			visibility = "public"
		}
		fmt.Fprintf(Out, "- %s  [%s]  %s\n", f.ID, visibility, f.CreatedAt)
		fmt.Fprintf(Out, "  %s\n", f.Content)
	}
	if page.Total > 0 {
		fmt.Fprintf(Out, "Showing %d of %d\n", len(page.Data), page.Total)
	}
}

type feedbackCmd struct{}

func (feedbackCmd) Name() string        { return "feedback" }
func (feedbackCmd) Description() string { return "List feedback left on your profile" }
func (feedbackCmd) Usage() string       { return "feedback [page [limit]]" }

func (feedbackCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 2 {
		return ErrUsage
	}
	page, limit := 1, 10
	var err error
	if len(args) >= 1 {
		if page, err = strconv.Atoi(args[0]); err != nil || page < 1 {
			return ErrUsage
		}
	}
	if len(args) == 2 {
		if limit, err = strconv.Atoi(args[1]); err != nil || limit < 1 {
			return ErrUsage
		}
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := env.RequireAuth(); err != nil {
		return err
	}

	res, err := env.API.MyFeedbacks(ctx, page, limit)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to load feedback."))
	}
	printFeedbacks(res)
	return nil
}

func init() { RegisterCmd(feedbackCmd{}) }
