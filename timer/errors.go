package timer

import "errors"

var (
	errEmptyTitle = errors.New(
		"section titles must not be empty",
	)

	errNoSuchSection = errors.New(
		"no section exists at this position",
	)
)
