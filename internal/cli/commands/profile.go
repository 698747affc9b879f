package commands

import (
	"context"
	"errors"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Show your profile" }
func (profileCmd) Usage() string       { return "profile" }

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	u, err := env.API.Me(ctx)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to load profile."))
	}
	// refresh the cached copy; the server owns the profile
	if err := env.Session.UpdateUser(u); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Name:     %s\n", u.Name)
	fmt.Fprintf(Out, "Username: %s\n", u.Username)
	fmt.Fprintf(Out, "Email:    %s\n", u.Email)
	if u.Bio != "" {
		fmt.Fprintf(Out, "Bio:      %s\n", u.Bio)
	}
	if u.Avatar != "" {
		fmt.Fprintf(Out, "Avatar:   set (%d bytes)\n", len(u.Avatar))
	}
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
