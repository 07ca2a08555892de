package tui

import "errors"

// ErrMissingViewEngine is returned when the view engine is not provided.
var ErrMissingViewEngine = errors.New("tui: view engine is required")

// ErrMissingActionService is returned when the record action service is not provided.
var ErrMissingActionService = errors.New("tui: record action service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
