package config

// UserConfig holds all of the user-configurable options. The fields here are
// all in PascalCase but in your actual config.yml they'll be in camelCase.
// You can view the default config with `lazyrmi --config`.
type UserConfig struct {
	// Language determines which language the messages are shown in. "auto"
	// picks up the language from your environment
	Language string `yaml:"language,omitempty"`

	// SkipForceRemove disables the force flag on delete requests. By default
	// we force removal so that an image still referenced by a stopped
	// container can go; set this if you'd rather the engine refuse in that
	// situation
	SkipForceRemove bool `yaml:"skipForceRemove,omitempty"`

	// SkipConfirmation suppresses the y/n prompt before a batch of deletions
	// is issued. The --yes flag does the same for a single run
	SkipConfirmation bool `yaml:"skipConfirmation,omitempty"`

	// Logging is for configuring the log file we write to in debug mode
	Logging LoggingConfig `yaml:"logging,omitempty"`

	// Replacements determines how we render image names
	Replacements Replacements `yaml:"replacements,omitempty"`
}

// LoggingConfig is for configuring the log file
type LoggingConfig struct {
	// Level is one of the logrus levels e.g. "debug", "info", "warn"
	Level string `yaml:"level,omitempty"`
}

// Replacements contains the stuff relating to rendering substitutions
type Replacements struct {
	// ImageNamePrefixes replaces registry prefixes in displayed image names,
	// e.g. shortening a long internal registry host to something readable
	ImageNamePrefixes map[string]string `yaml:"imageNamePrefixes,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because
// false is the boolean zero value and this will be ignored when parsing the
// user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language:         "auto",
		SkipForceRemove:  false,
		SkipConfirmation: false,
		Logging: LoggingConfig{
			Level: "info",
		},
		Replacements: Replacements{
			ImageNamePrefixes: map[string]string{},
		},
	}
}
