package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage user accounts",
		Commands: []*cli.Command{
			{
				Name:      "register",
				Usage:     "Create a new user account",
				ArgsUsage: "<name> <password>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Email address"},
					&cli.StringFlag{Name: "tel", Usage: "Phone number"},
					&cli.IntFlag{Name: "year", Usage: "Birth year"},
					&cli.IntFlag{Name: "month", Usage: "Birth month"},
					&cli.IntFlag{Name: "day", Usage: "Birth day"},
				},
				Action: r.UsersRegister,
			},
			{
				Name:      "login",
				Usage:     "Verify a user's credentials",
				ArgsUsage: "<name> <password>",
				Action:    r.UsersLogin,
			},
			{
				Name:      "show",
				Usage:     "Show a user's profile",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{jsonFlag(), prettyFlag()},
				Action:    r.UsersShow,
			},
			{
				Name:      "update",
				Usage:     "Update a user's profile fields",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Email address"},
					&cli.StringFlag{Name: "tel", Usage: "Phone number"},
					&cli.IntFlag{Name: "year", Usage: "Birth year"},
					&cli.IntFlag{Name: "month", Usage: "Birth month"},
					&cli.IntFlag{Name: "day", Usage: "Birth day"},
				},
				Action: r.UsersUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a user and their favorites",
				ArgsUsage: "<name>",
				Action:    r.UsersDelete,
			},
		},
	}
}

// UsersRegister creates a new user account.
func (r *Runner) UsersRegister(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	password := cmd.Args().Get(1)
	if name == "" || password == "" {
		return fmt.Errorf("%w: name and password arguments required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	user := &models.User{
		UserName: name,
		Password: password,
		Email:    cmd.String("email"),
		Tel:      cmd.String("tel"),
		Year:     cmd.Int("year"),
		Month:    cmd.Int("month"),
		Day:      cmd.Int("day"),
	}

	if err := cat.users.Create(user); err != nil {
		return fmt.Errorf("failed to register user %q: %w", name, err)
	}

	r.logger.Info("user registered", "name", name, "id", user.ID)
	r.writePlain("✓ Registered user %s (id %d)\n", name, user.ID)
	return nil
}

// UsersLogin checks a name/password pair against the stored account.
func (r *Runner) UsersLogin(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	password := cmd.Args().Get(1)
	if name == "" || password == "" {
		return fmt.Errorf("%w: name and password arguments required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := cat.users.Authenticate(name, password)
	if err != nil {
		return fmt.Errorf("login failed for %q: %w", name, err)
	}

	r.writePlain("✓ Logged in as %s (id %d)\n", name, id)
	return nil
}

// UsersShow prints a user's profile.
func (r *Runner) UsersShow(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("%w: name argument required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := cat.users.ByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", name, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlainHeader(user.UserName)
	if user.Email != "" {
		r.writePlain("Email: %s\n", user.Email)
	}
	if user.Tel != "" {
		r.writePlain("Tel: %s\n", user.Tel)
	}
	if user.Year != 0 {
		r.writePlain("Birthday: %04d-%02d-%02d\n", user.Year, user.Month, user.Day)
	}
	return nil
}

// UsersUpdate rewrites a user's profile fields. The password is untouched.
func (r *Runner) UsersUpdate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("%w: name argument required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := cat.users.ByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", name, err)
	}

	if cmd.IsSet("email") {
		user.Email = cmd.String("email")
	}
	if cmd.IsSet("tel") {
		user.Tel = cmd.String("tel")
	}
	if cmd.IsSet("year") {
		user.Year = cmd.Int("year")
	}
	if cmd.IsSet("month") {
		user.Month = cmd.Int("month")
	}
	if cmd.IsSet("day") {
		user.Day = cmd.Int("day")
	}

	if err := cat.users.UpdateInfo(user); err != nil {
		return fmt.Errorf("failed to update user %q: %w", name, err)
	}

	r.logger.Info("user updated", "name", name)
	r.writePlain("✓ Updated user %s\n", name)
	return nil
}

// UsersDelete removes a user account; their favorites go with it.
func (r *Runner) UsersDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("%w: name argument required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := cat.users.ByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", name, err)
	}

	if err := cat.users.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete user %q: %w", name, err)
	}

	r.logger.Warn("user deleted", "name", name, "id", user.ID)
	r.writePlain("✓ Deleted user %s\n", name)
	return nil
}
