package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type feedbackSetCmd struct{}

func (feedbackSetCmd) Name() string        { return "feedback-set" }
func (feedbackSetCmd) Description() string { return "Change a feedback entry's visibility" }
func (feedbackSetCmd) Usage() string       { return "feedback-set <id> public|private" }

func (feedbackSetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id := args[0]
	var isPublic bool
	switch args[1] {
	case "public":
		isPublic = true
	case "private":
		isPublic = false
	default:
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

	err = env.API.UpdateFeedback(ctx, id, api.FeedbackEdit{IsPublic: &isPublic})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to update feedback."))
	}
	fmt.Fprintf(Out, "Feedback is now %s\n", args[1])
	return nil
}

func init() { RegisterCmd(feedbackSetCmd{}) }
