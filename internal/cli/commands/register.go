package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/forms"
	"Insightly/internal/config"
)

func registerForm() forms.Form {
	return forms.Form{Fields: []forms.Field{
		{Name: "name", Rules: []forms.Rule{forms.Required("Name is required")}},
		{Name: "username", Rules: []forms.Rule{forms.Required("Username is required")}},
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

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string {
	return "register <email> <username> <name> [bio] [--password <pw>]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// --password may appear anywhere; everything else is positional
	var password string
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--password" {
			if i+1 >= len(args) {
				return ErrUsage
			}
			password = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}
	if len(rest) < 3 || len(rest) > 4 {
		return ErrUsage
	}
	email, username, name := rest[0], rest[1], rest[2]
	var bio string
	if len(rest) == 4 {
		bio = rest[3]
	}
	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	errs := registerForm().Validate(map[string]string{
		"name":     name,
		"username": username,
		"email":    email,
		"password": password,
	})
	if !errs.Ok() {
		return errs
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := env.API.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
		Name:     strings.TrimSpace(name),
		Bio:      bio,
	})
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Registration failed"))
	}
	if err := env.Session.Login(resp.AccessToken, &resp.User); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Account created. Logged in as %s\n", resp.User.Username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
