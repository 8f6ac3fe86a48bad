package main

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v3"

	"github.com/vdolink/vdolink/cmd/app/commands"
	"github.com/vdolink/vdolink/internal/app"
	"github.com/vdolink/vdolink/internal/config"
	linkService "github.com/vdolink/vdolink/internal/link/service"
)

func getLinkCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-link",
			Usage: "Generate a link with a random push ID and audience password and store it",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "copy",
					Aliases: []string{"c"},
					Value:   false,
					Usage:   "Copy the link to the system clipboard",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container)

				useCase, err := container.LinkUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunGenerateLink(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					clipboard.WriteAll,
					cmd.Bool("copy"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "set-link",
			Usage: "Store a link built from your own push ID and optional audience password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "push-id",
					Aliases: []string{"p"},
					Usage:   "Push ID (room name)",
				},
				&cli.StringFlag{
					Name:    "audience",
					Aliases: []string{"a"},
					Usage:   "Audience password; leave empty for an open link",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container)

				useCase, err := container.LinkUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunSetLink(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("push-id"),
					cmd.String("audience"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "show-link",
			Usage: "Print the stored link",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container)

				useCase, err := container.LinkUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunShowLink(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "ensure-link",
			Usage: "Print the stored link, generating one first if none can be loaded",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container)

				useCase, err := container.LinkUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunEnsureLink(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "validate-password",
			Usage: "Check an audience password against the password policy",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Required: true,
					Usage:    "Audience password to check",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunValidatePassword(
					linkService.NewPasswordValidator(),
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
