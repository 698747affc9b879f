package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/forms"
	"Insightly/internal/config"
)

type profileUpdateCmd struct{}

func (profileUpdateCmd) Name() string        { return "profile-update" }
func (profileUpdateCmd) Description() string { return "Edit name, bio or avatar" }
func (profileUpdateCmd) Usage() string {
	return "profile-update [--name <name>] [--bio <bio>] [--avatar <file>] [--remove-avatar]"
}

func (profileUpdateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("profile-update", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "new display name")
	bio := fs.String("bio", "", "new bio")
	avatarPath := fs.String("avatar", "", "path to an avatar image file")
	removeAvatar := fs.Bool("remove-avatar", false, "clear the avatar")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	nameSet := flagWasSet(fs, "name")
	bioSet := flagWasSet(fs, "bio")
	if !nameSet && !bioSet && *avatarPath == "" && !*removeAvatar {
		return ErrUsage
	}
	if *avatarPath != "" && *removeAvatar {
		return ErrUsage
	}

	if nameSet {
		f := forms.Form{Fields: []forms.Field{
			{Name: "name", Rules: []forms.Rule{forms.Required("Name is required")}},
		}}
		if errs := f.Validate(map[string]string{"name": *name}); !errs.Ok() {
			return errs
		}
	}

	upd := api.ProfileUpdate{}
	if nameSet {
		upd.Name = name
	}
	if bioSet {
		upd.Bio = bio
	}
	if *avatarPath != "" {
		uri, err := encodeAvatar(*avatarPath, cfg.AvatarMaxSizeMB*1024*1024)
		if err != nil {
			return err
		}
		upd.Avatar = &uri
	}
	if *removeAvatar {
		empty := ""
		upd.Avatar = &empty
	}

	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := env.RequireAuth(); err != nil {
		return err
	}

	u, err := env.API.UpdateProfile(ctx, upd)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to update profile. Please try again."))
	}
	if err := env.Session.UpdateUser(u); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Profile updated successfully!")
	return nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func init() { RegisterCmd(profileUpdateCmd{}) }
