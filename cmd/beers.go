package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/beers/internal/formatter"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
	"github.com/urfave/cli/v3"
)

// BeersList prints the collection, optionally filtered, as a table or JSON.
func (r *Runner) BeersList(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	t, closeStore, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	beers := t.Filter(cmd.String("filter"))

	if cmd.Bool("json") {
		if beers == nil {
			beers = []models.Beer{}
		}
		return r.writeJSON(beers, cmd.Bool("pretty"))
	}

	r.writePlainHeader(t.Heading())
	if len(beers) == 0 {
		if t.Count() == 0 {
			return r.writePlain("%s\n", models.EmptyMessage)
		}
		return r.writePlain("No beers match %q.\n", cmd.String("filter"))
	}

	data, err := formatter.ExportToText(beers, r.dates())
	if err != nil {
		return err
	}
	_, err = r.output.Write(data)
	return err
}

// BeersAdd validates the flags and appends a beer.
func (r *Runner) BeersAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	rating := cmd.Int("rating")
	if rating != 0 && !models.IsValidRating(rating) {
		return fmt.Errorf("%w: --rating must be between 1 and %d, got %d", shared.ErrInvalidFlag, models.MaxRating, rating)
	}

	in := models.BeerInput{
		Name:    cmd.String("name"),
		Brewery: cmd.String("brewery"),
		Style:   cmd.String("style"),
		Rating:  rating,
		Notes:   cmd.String("notes"),
	}

	t, closeStore, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	beer, err := t.Add(ctx, in)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Added %s (#%d) %s\n", beer.Name, beer.ID, models.RatingText(beer.Rating))
}

// BeersDelete removes one beer by id, asking first when display.confirm_delete is on.
func (r *Runner) BeersDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	id := cmd.Int("id")

	t, closeStore, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	beer, ok := t.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", shared.ErrBeerNotFound, id)
	}

	proceed, err := r.confirmUnless(cmd, beer.DeleteLabel()+"?")
	if err != nil || !proceed {
		return err
	}

	if _, err := t.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted %s\n", beer.Name)
}

// BeersClear removes the whole collection.
func (r *Runner) BeersClear(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	repo, closeStore, err := r.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	t, err := tracker.New(ctx, repo, tracker.Options{Clock: r.clock, Logger: r.logger})
	switch {
	case errors.Is(err, shared.ErrCorruptStore):
		proceed, err := r.confirmUnless(cmd, "The stored collection is corrupt. Discard it?")
		if err != nil || !proceed {
			return err
		}
		if err := repo.Clear(ctx); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		proceed, err := r.confirmUnless(cmd, fmt.Sprintf("Delete all %d beers?", t.Count()))
		if err != nil || !proceed {
			return err
		}
		if err := t.Clear(ctx); err != nil {
			return err
		}
	}
	return r.writePlain("✓ %s\n", tracker.CollectionHeading(0))
}

// confirmUnless prompts with question unless --yes was passed or confirmation is disabled in config.
func (r *Runner) confirmUnless(cmd *cli.Command, question string) (bool, error) {
	if cmd.Bool("yes") || !r.config.Display.ConfirmDelete {
		return true, nil
	}

	ok, err := r.confirm(question)
	if err != nil {
		return false, err
	}
	if !ok {
		r.writePlain("Cancelled\n")
	}
	return ok, nil
}
