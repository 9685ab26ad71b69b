package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"

	"github.com/ostafen/mathsets"
	"github.com/ostafen/mathsets/config"
)

var (
	boldColor    = color.New(color.Bold)
	successColor = color.New(color.FgGreen)
)

func (a App) run(c *cli.Context) error {
	log := a.logger(c.Bool("verbose"))
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	analyser, err := mathsets.New(
		mathsets.WithLogger(log),
		mathsets.CoalesceAdjacent(c.Bool("coalesce")),
	)
	if err != nil {
		return err
	}

	report, err := analyser.Run(c.Context, cfg)
	if err != nil {
		return err
	}

	if c.Bool("print") {
		fmt.Fprintln(a.outWriter, reportTable(cfg, report))
	}
	fmt.Fprintln(a.outWriter, successColor.Sprintf("The result is written to %s", report.Path))
	return nil
}

func reportTable(cfg *config.Config, report *mathsets.Report) string {
	tbl := table.NewWriter()
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	tbl.AppendRow(table.Row{boldColor.Sprint("Mode"), cfg.Mode()})
	if cfg.Mode() == config.ModeAffiliation {
		tbl.AppendRow(table.Row{boldColor.Sprint("Point"), cfg.Point()})
	}
	tbl.AppendRow(table.Row{boldColor.Sprint("Math sets"), report.Sets})
	tbl.AppendRow(table.Row{boldColor.Sprint(report.Result.Title), report.Result.Data()})
	tbl.SetStyle(table.StyleLight)
	return tbl.Render()
}
