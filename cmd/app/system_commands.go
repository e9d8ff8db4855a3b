package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/identity/cmd/app/commands"
	"github.com/allisson/identity/internal/app"
	"github.com/allisson/identity/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "bootstrap",
			Usage: "Seed an empty deployment with a domain, project, admin role and admin user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "domain-name",
					Value: "Default",
					Usage: "Name of the bootstrap domain",
				},
				&cli.StringFlag{
					Name:  "project-name",
					Value: "admin",
					Usage: "Name of the bootstrap project",
				},
				&cli.StringFlag{
					Name:  "admin-name",
					Value: "admin",
					Usage: "Name of the admin user",
				},
				&cli.StringFlag{
					Name:     "admin-password",
					Required: true,
					Usage:    "Password of the admin user",
				},
				&cli.StringFlag{
					Name:  "role-name",
					Value: "admin",
					Usage: "Name of the admin role",
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

				domainUseCase, err := container.DomainUseCase()
				if err != nil {
					return err
				}
				projectUseCase, err := container.ProjectUseCase()
				if err != nil {
					return err
				}
				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}
				roleUseCase, err := container.RoleUseCase()
				if err != nil {
					return err
				}
				assignmentUseCase, err := container.AssignmentUseCase()
				if err != nil {
					return err
				}

				return commands.RunBootstrap(
					ctx,
					commands.BootstrapDeps{
						DomainUseCase:     domainUseCase,
						ProjectUseCase:    projectUseCase,
						UserUseCase:       userUseCase,
						RoleUseCase:       roleUseCase,
						AssignmentUseCase: assignmentUseCase,
					},
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.BootstrapParams{
						DomainName:    cmd.String("domain-name"),
						ProjectName:   cmd.String("project-name"),
						AdminName:     cmd.String("admin-name"),
						AdminPassword: cmd.String("admin-password"),
						RoleName:      cmd.String("role-name"),
						Format:        cmd.String("format"),
					},
				)
			},
		},
	}
}
