package commands

import (
	"context"
	"fmt"

	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Clear the stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	// idempotent: logging out while logged out is fine
	if err := env.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
