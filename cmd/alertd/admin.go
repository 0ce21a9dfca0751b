package main

import (
	"context"
	"fmt"

	"disaster-alert/internal/config"
	entity "disaster-alert/internal/domain"
	mongorepo "disaster-alert/internal/repository/mongodb"
	"disaster-alert/internal/service"

	"github.com/urfave/cli/v2"
)

func newCreateAdminCmd() *cli.Command {
	return &cli.Command{
		Name:  "create-admin",
		Usage: "provision an admin account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "mobile-number", Required: true},
			&cli.StringFlag{Name: "location", Required: true},
			&cli.StringFlag{Name: "date-of-birth"},
			&cli.StringFlag{Name: "gender"},
		},
		Action: createAdmin,
	}
}

func createAdmin(c *cli.Context) error {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := openStore(c.Context, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background()) //nolint:errcheck

	identity := service.NewIdentityService(
		mongorepo.NewUserRepository(store, mongorepo.CollectionUsers),
		mongorepo.NewUserRepository(store, mongorepo.CollectionAdmins),
		logger,
	)
	err = identity.CreateAdmin(c.Context, &entity.RegisterInput{
		Email:        c.String("email"),
		Password:     c.String("password"),
		Name:         c.String("name"),
		MobileNumber: c.String("mobile-number"),
		Location:     c.String("location"),
		DateOfBirth:  c.String("date-of-birth"),
		Gender:       c.String("gender"),
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "admin %s created\n", c.String("email"))
	return nil
}
