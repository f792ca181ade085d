package aggregators

import "errors"

// ErrInvalidConfig is returned by NewTrafficAggregator for unusable settings.
var ErrInvalidConfig = errors.New("invalid aggregator config")
