// Package command provides CLI command definitions for surveyauth.
package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/surveyauth-go/internal/cli/config"
	"github.com/yndnr/surveyauth-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration (private key masked)",
				Action: configShow,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	cfg := config.Sanitize(rt.Config)
	if rt.Config.Output.Format == string(output.FormatTable) {
		return render(c, rt, configTable(cfg))
	}
	return render(c, rt, cfg)
}

func configTable(cfg *config.CLIConfig) *output.Table {
	table := output.NewTable("KEY", "VALUE")
	table.AddRow("issuer.private_key", orDash(cfg.Issuer.PrivateKey))
	table.AddRow("issuer.salt_length", strconv.Itoa(cfg.Issuer.SaltLength))
	table.AddRow("issuer.hash_length", strconv.Itoa(cfg.Issuer.HashLength))
	table.AddRow("issuer.parallelism", strconv.Itoa(cfg.Issuer.Parallelism))
	table.AddRow("issuer.max_range", strconv.FormatInt(cfg.Issuer.MaxRange, 10))
	table.AddRow("output.format", cfg.Output.Format)
	table.AddRow("log.level", cfg.Log.Level)
	table.AddRow("log.format", cfg.Log.Format)
	table.AddRow("metrics.file", orDash(cfg.Metrics.File))
	return table
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
