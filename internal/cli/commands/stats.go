package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Show feedback totals" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	stats, err := env.API.FeedbackStats(ctx)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to load stats."))
	}
	fmt.Fprintf(Out, "Feedback total:  %d\n", stats.Total)
	fmt.Fprintf(Out, "Feedback public: %d\n", stats.Public)
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
