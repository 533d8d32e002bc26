package mode

import "errors"

// ErrUnknown indicates a mode identifier outside the closed set.
var ErrUnknown = errors.New("unknown journal mode")
