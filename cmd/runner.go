package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/services"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/tasks"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/ui"
)

// Runner holds all dependencies for CLI commands and provides methods for
// each command action. Dependencies are injected at construction; the Runner
// owns nothing global.
type Runner struct {
	config     *shared.Config
	spotify    services.Service
	reasoner   tasks.Reasoner
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	palette    *ui.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Spotify    services.Service
	Reasoner   tasks.Reasoner
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Palette    *ui.Palette
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
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Palette == nil {
		opts.Palette = ui.DefaultPalette()
	}

	return &Runner{
		config:     opts.Config,
		spotify:    opts.Spotify,
		reasoner:   opts.Reasoner,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		palette:    opts.Palette,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		recommendCommand, authCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
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

func (r *Runner) writeOk(format string, args ...any) error {
	return r.writePlain("%s %s\n", r.palette.Ok("✓"), fmt.Sprintf(format, args...))
}

func (r *Runner) writeWarn(format string, args ...any) error {
	return r.writePlain("%s %s\n", r.palette.Warn("⚠"), fmt.Sprintf(format, args...))
}
