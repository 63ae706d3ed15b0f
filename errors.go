package touchplot

import "errors"

// ErrInvalidRange is returned by Chart.SetRange for ranges with
// min >= max. The chart is left unchanged.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidConfig indicates a configuration value out of bounds.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrUnknownZone indicates a time zone name which cannot be loaded.
var ErrUnknownZone = errors.New("unknown time zone")
