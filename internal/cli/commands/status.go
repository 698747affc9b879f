package commands

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current session" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if !env.Session.IsAuthenticated() {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	u := env.Session.User()
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", u.Username, u.Email)
	if exp := tokenExpiry(env.Session.Token()); exp != "" {
		fmt.Fprintf(Out, "Token expires: %s\n", exp)
	}
	return nil
}

// tokenExpiry decodes the bearer token without verifying its signature and
// returns the exp claim, "" when the token is opaque or carries none.
func tokenExpiry(token string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}
	return exp.Time.UTC().Format("2006-01-02 15:04:05 MST")
}

func init() { RegisterCmd(statusCmd{}) }
