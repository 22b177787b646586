package gfx

import (
	"log/slog"

	"github.com/gogpu/tilewalk"
)

// logger returns the shared tilewalk logger.
func logger() *slog.Logger {
	return tilewalk.Logger()
}
