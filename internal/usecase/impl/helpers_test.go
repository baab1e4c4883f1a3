package impl

import (
	"io"
	"log/slog"
)

const (
	testCanteenID = "64b7f0c2e1a4c3b2a1d0e9f8"
	testDishID    = "64b7f0c2e1a4c3b2a1d0e9f9"
	testUserID    = "64b7f0c2e1a4c3b2a1d0e9fa"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
