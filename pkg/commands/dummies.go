package commands

import (
	"io"

	"github.com/MarcelRaschke/lazyrmi/pkg/config"
	"github.com/MarcelRaschke/lazyrmi/pkg/i18n"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	userConfig.Language = "en"

	return &config.AppConfig{
		Name:        "lazyrmi",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyDockerCommand creates a new dummy DockerCommand for testing
func NewDummyDockerCommand(runtime ImageRuntime) *DockerCommand {
	appConfig := NewDummyAppConfig()

	return NewDockerCommandWithRuntime(
		NewDummyLog(),
		i18n.NewTranslationSet(NewDummyLog(), appConfig.UserConfig.Language),
		appConfig,
		runtime,
	)
}
