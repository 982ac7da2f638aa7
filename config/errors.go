package config

import "errors"

var (
	errInitFailed = errors.New(
		"Unable to initialise tourcue settings from the configuration file",
	)

	errInvalidFPS = errors.New(
		"the frame rate must be one of 24, 25, 30, or 60",
	)

	errEmptyProjectName = errors.New(
		"the project name must not be empty",
	)
)
