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

func loginForm() forms.Form {
	return forms.Form{Fields: []forms.Field{
		{Name: "email", Rules: []forms.Rule{
			forms.Required("Email is required"),
			forms.Pattern(forms.EmailPattern, "Invalid email address"),
		}},
		{Name: "password", Rules: []forms.Rule{
			forms.Required("Password is required"),
			forms.MinLength(6, "Password must be at least 6 characters"),
		}},
	}}
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and store the session" }
func (loginCmd) Usage() string       { return "login <email> [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	email := args[0]
	var password string
	if len(args) == 2 {
		password = args[1]
	} else {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	if errs := loginForm().Validate(map[string]string{"email": email, "password": password}); !errs.Ok() {
		return errs
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := env.API.Login(ctx, email, password)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Login failed. Please try again."))
	}
	if err := env.Session.Login(resp.AccessToken, &resp.User); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", resp.User.Username)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
