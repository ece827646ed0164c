package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/beers/internal/repositories"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	store      repositories.KVStore
	clock      shared.Clock
	logger     *log.Logger
	output     io.Writer
	input      io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Store overrides the store selected by database.driver; tests use it to inject failures.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Store      repositories.KVStore
	Clock      shared.Clock
	Logger     *log.Logger
	Output     io.Writer
	Input      io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Clock == nil {
		opts.Clock = shared.SystemClock
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		store:      opts.Store,
		clock:      opts.Clock,
		logger:     opts.Logger,
		output:     opts.Output,
		input:      opts.Input,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, tuiCommand, serveCommand, beersCommand, exportCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by subsequent commands.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// configure loads the file named by --config when it differs from the one already loaded and applies the log level.
//
// A missing file at the default path keeps the current configuration; a missing file the user named is an error.
func (r *Runner) configure(cmd *cli.Command) error {
	path := cmd.String("config")
	if path != "" && path != r.configPath {
		if _, err := os.Stat(path); err != nil {
			if cmd.IsSet("config") {
				return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
			}
		} else {
			config, err := shared.LoadConfig(path)
			if err != nil {
				return err
			}
			r.config = config
			r.configPath = path
		}
	}

	return shared.SetLogLevel(r.logger, r.config.Log.Level)
}

// openTracker builds the store selected by database.driver and loads the collection.
//
// The returned func releases the store and must be called when the command finishes. A corrupt stored
// collection is an error; the store is released and `beers clear` is the way out.
func (r *Runner) openTracker(ctx context.Context) (*tracker.Tracker, func() error, error) {
	repo, closer, err := r.openRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	t, err := tracker.New(ctx, repo, tracker.Options{Clock: r.clock, Logger: r.logger})
	if err != nil {
		closer()
		if errors.Is(err, shared.ErrCorruptStore) {
			return nil, nil, fmt.Errorf("%w (run `beers clear` to reset it)", err)
		}
		return nil, nil, err
	}
	return t, closer, nil
}

// openRepository opens the store selected by database.driver without loading the collection.
func (r *Runner) openRepository(ctx context.Context) (*repositories.BeerRepository, func() error, error) {
	store, closer, err := r.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewBeerRepository(store, r.config.Database.StorageKey), closer, nil
}

func (r *Runner) openStore(ctx context.Context) (repositories.KVStore, func() error, error) {
	noop := func() error { return nil }

	if r.store != nil {
		return r.store, noop, nil
	}

	switch r.config.Database.Driver {
	case shared.DriverMemory:
		r.logger.Warn("using in-memory storage, the collection is lost on exit")
		return repositories.NewMemoryStore(), noop, nil
	case shared.DriverSQLite:
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

		if err := shared.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
		}
		return repositories.NewSQLiteStore(db), db.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown database.driver %q", shared.ErrInvalidConfig, r.config.Database.Driver)
}

// dates returns the formatter for display.locale.
func (r *Runner) dates() *shared.DateFormatter {
	return shared.NewDateFormatter(r.config.Display.Locale)
}

// confirm asks a yes/no question on the runner's input. Anything but y or yes is a no.
func (r *Runner) confirm(prompt string) (bool, error) {
	if err := r.writePlain("%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(r.input).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
