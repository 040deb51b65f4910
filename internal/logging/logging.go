package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init builds the process logger: human-readable console output on stderr,
// optionally teed into a JSON log file. The file handle stays open for the
// lifetime of the process.
func Init(logFile string, noColor bool) (zerolog.Logger, error) {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	var w io.Writer = console
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("opening log file %s: %w", logFile, err)
		}
		w = zerolog.MultiLevelWriter(console, f)
	}

	logger := zerolog.New(w).With().Timestamp().Str("app", "webrecon").Logger()
	log.Logger = logger
	return logger, nil
}
