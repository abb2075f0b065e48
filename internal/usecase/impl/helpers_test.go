package impl

import (
	"io"
	"log/slog"

	"foodaid/config"
	"foodaid/internal/errors"
	"foodaid/internal/testutil"
	"foodaid/internal/usecase"
)

var errConnectionReset = errors.New("connection reset by peer")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAttempts int) *config.Config {
	cfg := &config.Config{}
	cfg.Tracking.MaxAttempts = maxAttempts

	return cfg
}

func testClock() usecase.Clock {
	return testutil.Clock
}
