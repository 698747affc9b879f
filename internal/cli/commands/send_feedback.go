package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/forms"
	"Insightly/internal/config"
)

func feedbackForm() forms.Form {
	return forms.Form{Fields: []forms.Field{
		{Name: "content", Rules: []forms.Rule{
			forms.Required("Feedback is required"),
			forms.MinLength(10, "Feedback must be at least 10 characters"),
			forms.MaxLength(1000, "Feedback must be at most 1000 characters"),
		}},
	}}
}

type sendFeedbackCmd struct{}

func (sendFeedbackCmd) Name() string        { return "send-feedback" }
func (sendFeedbackCmd) Description() string { return "Leave anonymous feedback on a profile" }
func (sendFeedbackCmd) Usage() string       { return "send-feedback <username> <content> [--private]" }

func (sendFeedbackCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	isPublic := true
	rest := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--private" {
			isPublic = false
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) != 2 {
		return ErrUsage
	}
	username, content := rest[0], rest[1]

	// the facade is never reached with out-of-bounds content
	if errs := feedbackForm().Validate(map[string]string{"content": content}); !errs.Ok() {
		return errs
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	_, err = env.API.CreateFeedback(ctx, username, content, isPublic)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to submit feedback."))
	}
	fmt.Fprintln(Out, "Thank you for your feedback!")
	return nil
}

func init() { RegisterCmd(sendFeedbackCmd{}) }
