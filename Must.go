package wlib

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger sets the logger Check reports violations to. It's a no-op logger by default.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Check is the fail-fast policy: a non-nil err is logged together with its stack and then panics.
// Use it where a container error can only mean a bug in the caller.
func Check(err error) {
	if err != nil {
		logger.Error().Stack().Err(err).Msg("container invariant violated")
		panic(err)
	}
}

// Must returns v, or behaves like Check if err isn't nil.
func Must[T any](v T, err error) T {
	Check(err)
	return v
}
