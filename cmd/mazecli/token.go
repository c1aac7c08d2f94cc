package main

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue a bearer token for the protected REST routes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "Signing secret shared with the API",
				EnvVars:  []string{"JWT_SECRET"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "issuer",
				Usage:    "Issuer the API expects",
				EnvVars:  []string{"JWT_ISSUER"},
				Required: true,
			},
			&cli.StringFlag{
				Name:  "subject",
				Usage: "Subject claim, used as the default snapshot name",
				Value: "mazecli",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "Token lifetime",
				Value: time.Hour,
			},
		},
		Action: func(c *cli.Context) error {
			tokenizer, err := token.NewJwtService(c.String("secret"), c.String("issuer"))
			if err != nil {
				return fmt.Errorf("%w: %v", errBadInput, err)
			}

			tok, err := tokenizer.Issue(c.String("subject"), c.Duration("ttl"))
			if err != nil {
				return fmt.Errorf("%w: %v", errBadInput, err)
			}

			fmt.Fprintln(c.App.Writer, tok)
			return nil
		},
	}
}
