package engine

import "github.com/go-logr/logr"

// Log messages of the two telemetry channels.
const (
	MessageCancellation   = "cancellation"
	MessageAutocorrection = "autocorrection"
)

// Autocorrection reports a silent repair made by a style.
func Autocorrection(logger logr.Logger, note string, keysAndValues ...any) {
	logger.V(1).Info(MessageAutocorrection, append([]any{"note", note}, keysAndValues...)...)
}

// Cancellation reports a rejected edit.
func Cancellation(logger logr.Logger, err error, keysAndValues ...any) {
	logger.V(1).Info(MessageCancellation, append([]any{"error", err.Error()}, keysAndValues...)...)
}
