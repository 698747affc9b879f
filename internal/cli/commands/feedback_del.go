package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/collection"
	"Insightly/internal/cli/model"
	"Insightly/internal/config"
)

type feedbackDelCmd struct{}

func (feedbackDelCmd) Name() string        { return "feedback-del" }
func (feedbackDelCmd) Description() string { return "Delete one feedback entry" }
func (feedbackDelCmd) Usage() string       { return "feedback-del <id>" }

func (feedbackDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	feedbacks := collection.New("feedbacks", func(ctx context.Context) ([]model.FeedbackItem, error) {
		page, err := env.API.MyFeedbacks(ctx, 1, 10)
		if err != nil {
			return nil, err
		}
		return page.Data, nil
	})

	err = feedbacks.Mutate(ctx, func(ctx context.Context) error {
		return env.API.DeleteFeedback(ctx, id)
	})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to delete feedback."))
	}
	fmt.Fprintln(Out, "Feedback deleted")

	list, err := feedbacks.Get(ctx)
	if err != nil {
		return err
	}
	printFeedbacks(&model.FeedbackPage{Data: list})
	return nil
}

func init() { RegisterCmd(feedbackDelCmd{}) }
