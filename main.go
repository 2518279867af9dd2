package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/MarcelRaschke/lazyrmi/pkg/app"
	"github.com/MarcelRaschke/lazyrmi/pkg/config"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	dryRunFlag    = false
	danglingFlag  = false
	yesFlag       = false
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazyrmi")
	flaggy.SetDescription("The lazier way to remove docker images and everything built on top of them")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/MarcelRaschke/lazyrmi"
	// image references are free-form trailing arguments
	flaggy.DefaultParser.ShowHelpOnUnexpected = false

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Write a debug log to the config directory")
	flaggy.Bool(&dryRunFlag, "n", "dry-run", "Show the removal order without removing anything")
	flaggy.Bool(&danglingFlag, "", "dangling", "Also select every image with no tag")
	flaggy.Bool(&yesFlag, "y", "yes", "Skip the confirmation prompt")
	flaggy.SetVersion(info)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("lazyrmi", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	opts := app.RunOptions{
		Refs:             flaggy.TrailingArguments,
		Dangling:         danglingFlag,
		DryRun:           dryRunFlag,
		SkipConfirmation: yesFlag,
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		defer app.Close()
		err = app.Run(opts)
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}
