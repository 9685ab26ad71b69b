package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/ostafen/mathsets/output"
	"github.com/ostafen/mathsets/store"
)

func (a App) history(c *cli.Context) error {
	format, err := output.ParseFormat(c.String("kind"))
	if err != nil {
		return err
	}
	if !format.IsStore() {
		return fmt.Errorf("%q is not a result store kind", c.String("kind"))
	}

	log := a.logger(c.Bool("verbose"))
	defer log.Sync() //nolint:errcheck

	s, err := output.OpenStore(format, c.String("store"), log)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := store.NewResults(s).List(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.outWriter, "No results stored.")
		return nil
	}

	tbl := table.NewWriter()
	tbl.AppendHeader(table.Row{
		boldColor.Sprint("ID"),
		boldColor.Sprint("Created"),
		boldColor.Sprint("Mode"),
		boldColor.Sprint("Point"),
		boldColor.Sprint("Result"),
	})
	for _, rec := range records {
		res := output.Result{Atoms: rec.Atoms, Affiliation: rec.Affiliation}
		point := ""
		if rec.Affiliation != nil {
			point = fmt.Sprint(rec.Point)
		}
		tbl.AppendRow(table.Row{rec.ID, humanize.Time(rec.CreatedAt), rec.Mode, point, res.Data()})
	}
	tbl.SetStyle(table.StyleLight)
	fmt.Fprintln(a.outWriter, tbl.Render())
	return nil
}
