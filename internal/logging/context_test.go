package logging_test

import (
	"context"
	"testing"

	"github.com/yaklabco/gomathdoc/internal/logging"
)

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != logging.Default() {
		t.Error("bare context should yield the default logger")
	}

	if got := logging.FromContext(nil); got != logging.Default() { //nolint:staticcheck // exercises nil handling
		t.Error("nil context should yield the default logger")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("info")
	ctx := logging.WithLogger(nil, logger) //nolint:staticcheck // exercises nil handling

	if got := logging.FromContext(ctx); got != logger {
		t.Error("WithLogger on a nil context should still carry the logger")
	}
}
