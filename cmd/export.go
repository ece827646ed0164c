package main

import (
	"context"

	"github.com/desertthunder/beers/internal/formatter"
	"github.com/urfave/cli/v3"
)

// Export renders the collection in the requested format to --output or stdout.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	t, closeStore, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if path := cmd.String("output"); path != "" {
		written, err := formatter.WriteExport(t.Beers(), format, r.dates(), path)
		if err != nil {
			return err
		}
		r.logger.Info("export written", "format", format, "path", written, "count", t.Count())
		return r.writePlain("✓ Exported %d beers to %s\n", t.Count(), written)
	}

	data, err := formatter.Export(t.Beers(), format, r.dates())
	if err != nil {
		return err
	}
	_, err = r.output.Write(data)
	return err
}
