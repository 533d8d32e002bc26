package guidance

import "errors"

// ErrEmptyInput indicates the user submitted no text.
// Callers check it with CheckInput before calling the service.
var ErrEmptyInput = errors.New("empty input")

// ErrNoGenerator indicates the service was built without a generator.
var ErrNoGenerator = errors.New("no text generator configured")
