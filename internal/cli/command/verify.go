// Package command provides CLI command definitions for surveyauth.
package command

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/surveyauth-go/internal/core/domain"
	"github.com/yndnr/surveyauth-go/internal/telemetry/logger"
)

// VerifyCommand returns the verify command.
//
// The result is printed as true or false. A false result exits with
// status 1 and no error line.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:    "verify",
		Aliases: []string{"v"},
		Usage:   "Verify a token for an identity",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "Token to verify",
			},
		},
		Action: verify,
	}
}

func verify(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	id, err := identityArg(c, "id")
	if err != nil {
		return err
	}
	if !c.IsSet("token") {
		return domain.ErrMissingArgument.WithDetails("--token")
	}

	issuer, err := newIssuer(rt)
	if err != nil {
		return err
	}

	start := time.Now()
	valid, err := issuer.VerifyTokenString(id, c.String("token"))
	rt.Metrics.Time("verify", start)
	rt.Metrics.ObserveVerification(valid, err)
	if err != nil {
		return err
	}
	logger.L(rt.Context()).Info("token verified", "id", id, "valid", valid)

	if err := render(c, rt, valid); err != nil {
		return err
	}
	if !valid {
		return cli.Exit("", 1)
	}
	return nil
}
