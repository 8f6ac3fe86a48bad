package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vdolink/vdolink/cmd/app/commands"
	"github.com/vdolink/vdolink/internal/app"
	"github.com/vdolink/vdolink/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Create the encryption key file if it does not exist yet",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container)

				keyUseCase, err := container.KeyUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreateKey(
					ctx,
					keyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cfg.KeyFilePath,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "create-kms-key-uri",
			Usage: "Generate a local base64key:// URI for KMS_KEY_URI",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateKMSKeyURI(commands.DefaultIO().Writer, nil)
			},
		},
	}
}
