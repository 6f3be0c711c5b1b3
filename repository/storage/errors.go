package storage

import "errors"

// ErrPlacementChanged means the placement row no longer matched the expected rack.
var ErrPlacementChanged = errors.New("placement changed concurrently")
