package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/identity/cmd/app/commands"
	"github.com/allisson/identity/internal/app"
	"github.com/allisson/identity/internal/config"
)

func getPrincipalCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a new user in a domain",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "domain-id",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "ID of the domain that owns the user",
				},
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "User name, unique within the domain",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "User password (omit to be prompted)",
				},
				&cli.StringFlag{
					Name:  "description",
					Usage: "Free-form description",
				},
				&cli.BoolFlag{
					Name:    "enabled",
					Aliases: []string{"e"},
					Value:   true,
					Usage:   "Whether the user can authenticate immediately",
				},
				&cli.StringFlag{
					Name:  "default-project-id",
					Usage: "Project used when an authentication request omits a scope",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					commands.CreateUserParams{
						DomainID:         cmd.String("domain-id"),
						Name:             cmd.String("name"),
						Password:         cmd.String("password"),
						Description:      cmd.String("description"),
						Enabled:          cmd.Bool("enabled"),
						DefaultProjectID: cmd.String("default-project-id"),
						Format:           cmd.String("format"),
					},
					commands.DefaultIO(),
				)
			},
		},
	}
}
