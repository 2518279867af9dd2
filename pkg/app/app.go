package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MarcelRaschke/lazyrmi/pkg/commands"
	"github.com/MarcelRaschke/lazyrmi/pkg/config"
	"github.com/MarcelRaschke/lazyrmi/pkg/i18n"
	"github.com/MarcelRaschke/lazyrmi/pkg/log"
	"github.com/MarcelRaschke/lazyrmi/pkg/presentation"
	"github.com/MarcelRaschke/lazyrmi/pkg/utils"
	"github.com/docker/docker/api/types/image"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	closers []io.Closer

	Config        *config.AppConfig
	Log           *logrus.Entry
	DockerCommand *commands.DockerCommand
	Tr            *i18n.TranslationSet

	// Out is where user-facing output goes; a file in tests
	Out io.Writer
	// In is where confirmation answers come from
	In io.Reader
}

// RunOptions carries the parsed command line
type RunOptions struct {
	// Refs are the image references to remove, together with all of their
	// descendant layers
	Refs []string

	// Dangling additionally selects every image with no tag
	Dangling bool

	// DryRun shows the removal order without issuing any deletions
	DryRun bool

	// SkipConfirmation suppresses the prompt for this run
	SkipConfirmation bool
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
		Out:     os.Stdout,
		In:      os.Stdin,
	}

	var err error
	app.Log = log.NewLogger(config)
	app.Log.WithField("configPath", config.ConfigPath()).Debug("using config file")
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}

	app.DockerCommand, err = commands.NewDockerCommand(app.Log, app.Tr, app.Config)
	if err != nil {
		return app, err
	}
	app.closers = append(app.closers, app.DockerCommand)

	return app, nil
}

// Run resolves the selection, plans the removal order and carries it out
func (app *App) Run(opts RunOptions) error {
	if len(opts.Refs) == 0 && !opts.Dangling {
		return errors.New(app.Tr.NoImagesSelected)
	}

	ctx := context.Background()

	images, err := app.DockerCommand.RefreshImages(ctx)
	if err != nil {
		return err
	}

	selected, err := app.DockerCommand.ResolveSelections(images, opts.Refs, opts.Dangling)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		fmt.Fprintln(app.Out, app.Tr.NoDanglingImages)
		return nil
	}

	batch, err := app.planBatch(images, selected, opts)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		fmt.Fprintln(app.Out, app.Tr.NothingToRemove)
		return nil
	}

	table, err := presentation.RemovalTable(app.Tr, batch)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, app.Tr.PlanHeading)
	fmt.Fprintln(app.Out, table)

	if opts.DryRun {
		fmt.Fprintln(app.Out, app.Tr.DryRunNotice)
		return nil
	}

	if !opts.SkipConfirmation && !app.Config.UserConfig.SkipConfirmation {
		if !app.confirm(len(batch)) {
			fmt.Fprintln(app.Out, app.Tr.Aborted)
			return nil
		}
	}

	removed, err := app.DockerCommand.ExecutePlan(ctx, batch, func(img image.Summary) {
		fmt.Fprintln(app.Out, utils.ResolvePlaceholderString(app.Tr.RemovingImage, map[string]string{
			"image": utils.ShortID(img.ID),
		}))
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, utils.ResolvePlaceholderString(app.Tr.RemovalSummary, map[string]string{
		"count": strconv.Itoa(len(removed)),
		"size":  utils.FormatBinaryBytes(presentation.TotalSize(removed)),
	}))

	return nil
}

// planBatch picks between the single-subject collector and the full planner.
// A single subject doesn't need full-forest depth ordering: its descendants
// come out of the collector already deepest-first within each branch, with
// the subject itself last
func (app *App) planBatch(images []*commands.Image, selected []string, opts RunOptions) ([]image.Summary, error) {
	if len(selected) == 1 && !opts.Dangling {
		return app.DockerCommand.CollectSubjectRemoval(images, selected[0]), nil
	}
	return app.DockerCommand.PlanRemoval(images, selected)
}

func (app *App) confirm(count int) bool {
	fmt.Fprint(app.Out, utils.ResolvePlaceholderString(app.Tr.ConfirmRemoval, map[string]string{
		"count": strconv.Itoa(count),
	}))

	answer, err := bufio.NewReader(app.In).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Close closes any resources the app opened
func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know
// about where we can print a nicely formatted version of it rather than
// panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "Got permission denied while trying to connect to the Docker daemon socket",
			newError:      app.Tr.CannotAccessDockerSocketError,
		},
		{
			originalError: "Cannot connect to the Docker daemon",
			newError:      app.Tr.ConnectionFailed,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}
	return "", false
}
