package impl

import (
	"io"
	"log/slog"

	"crosspath/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProximityConfig() *config.Config {
	return &config.Config{Proximity: config.DefaultProximity()}
}
