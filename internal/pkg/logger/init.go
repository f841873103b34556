package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer = os.Stdout

// InitLogger installs the process-wide JSON logger.
func InitLogger() {
	h := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{h}))
}
