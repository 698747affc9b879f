package commands

import (
	"context"
	"errors"
	"strconv"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type publicFeedbackCmd struct{}

func (publicFeedbackCmd) Name() string        { return "public-feedback" }
func (publicFeedbackCmd) Description() string { return "List public feedback on a profile" }
func (publicFeedbackCmd) Usage() string       { return "public-feedback <username> [page [limit]]" }

func (publicFeedbackCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	username := args[0]
	page, limit := 1, 10
	var err error
	if len(args) >= 2 {
		if page, err = strconv.Atoi(args[1]); err != nil || page < 1 {
			return ErrUsage
		}
	}
	if len(args) == 3 {
		if limit, err = strconv.Atoi(args[2]); err != nil || limit < 1 {
			return ErrUsage
		}
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	res, err := env.API.PublicFeedbacks(ctx, username, page, limit)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to load feedback."))
	}
	printFeedbacks(res)
	return nil
}

func init() { RegisterCmd(publicFeedbackCmd{}) }
