// Package command provides CLI command definitions for surveyauth.
package command

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/surveyauth-go/internal/cli/output"
	"github.com/yndnr/surveyauth-go/internal/core/domain"
	"github.com/yndnr/surveyauth-go/internal/telemetry/logger"
)

// issuedToken renders one token as {"id", "token"}.
type issuedToken struct {
	domain.Token
}

// Table implements output.Tabular.
func (t issuedToken) Table() *output.Table {
	return issuedTokens{t.Token}.Table()
}

// issuedTokens renders a list of tokens as an array of {"id", "token"}.
type issuedTokens []domain.Token

// Table implements output.Tabular.
func (l issuedTokens) Table() *output.Table {
	table := output.NewTable("ID", "TOKEN")
	for _, tok := range l {
		table.AddRow(strconv.FormatInt(tok.ID(), 10), tok.String())
	}
	return table
}

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate a single token",
		Flags: []cli.Flag{
			idFlag(),
		},
		Action: generate,
	}
}

// GenerateRangeCommand returns the generate-range command.
func GenerateRangeCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate-range",
		Aliases: []string{"G", "range"},
		Usage:   "Generate tokens for every identity in a range, inclusive",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{
				Name:  "to",
				Usage: "Last identity of the range",
			},
		},
		Action: generateRange,
	}
}

func idFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "id",
		Usage: "Identity (non-negative integer; fractions are floored)",
	}
}

// identityArg parses a required identity flag.
func identityArg(c *cli.Context, name string) (int64, error) {
	if !c.IsSet(name) {
		return 0, domain.ErrMissingArgument.WithDetails("--" + name)
	}
	return domain.ParseIdentity(c.String(name))
}

func generate(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	id, err := identityArg(c, "id")
	if err != nil {
		return err
	}

	issuer, err := newIssuer(rt)
	if err != nil {
		return err
	}

	defer rt.Metrics.Time("generate", time.Now())
	tok, err := issuer.GenerateTokenWithID(id)
	if err != nil {
		return err
	}
	rt.Metrics.ObserveGenerated(1)
	logger.L(rt.Context()).Info("token generated", "id", id)

	return render(c, rt, issuedToken{tok})
}

func generateRange(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	from, err := identityArg(c, "id")
	if err != nil {
		return err
	}
	to, err := identityArg(c, "to")
	if err != nil {
		return err
	}

	issuer, err := newIssuer(rt)
	if err != nil {
		return err
	}

	defer rt.Metrics.Time("generate_range", time.Now())
	tokens, err := issuer.GenerateTokensWithIDRange(rt.Context(), from, to)
	if err != nil {
		return err
	}
	rt.Metrics.ObserveGenerated(len(tokens))
	logger.L(rt.Context()).Info("token range generated", "from", from, "to", to, "count", len(tokens))

	return render(c, rt, issuedTokens(tokens))
}
