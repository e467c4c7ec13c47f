package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gen-relay/genlayer-relay/cmd/app/commands"
	"github.com/gen-relay/genlayer-relay/internal/app"
	"github.com/gen-relay/genlayer-relay/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getSigningCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "sign",
			Usage: "Sign a message with SIGN_SECRET",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "message",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Message to sign",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				signingUseCase, err := container.SigningUseCase()
				if err != nil {
					return err
				}

				return commands.RunSign(
					ctx,
					signingUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("message"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify",
			Usage: "Verify a hex signature for a message with SIGN_SECRET",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "message",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Message that was signed",
				},
				&cli.StringFlag{
					Name:     "signature",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Hex encoded signature",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				signingUseCase, err := container.SigningUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerify(
					ctx,
					signingUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("message"),
					cmd.String("signature"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-secret",
			Usage: "Generate a random SIGN_SECRET, optionally encrypted with a KMS key",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"n"},
					Value:   32,
					Usage:   "Secret size in bytes",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateSecret(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("size")),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
