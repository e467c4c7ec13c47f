package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gen-relay/genlayer-relay/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
	}
}
