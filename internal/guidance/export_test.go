package guidance

// Exports for testing.

var WithClock = withClock

const UnknownModeLabel = unknownModeLabel
