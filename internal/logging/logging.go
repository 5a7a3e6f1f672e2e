package logging

import (
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging.
// If path is empty, logging is disabled and the returned logger discards.
// If path is set, slog records and Bubble Tea's std log output both go to
// that file. The cleanup func closes it.
func Setup(path string, level slog.Level) (logger *slog.Logger, cleanup func(), err error) {
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		log.SetOutput(io.Discard)
		logger = slog.New(slog.NewTextHandler(io.Discard, opts))
		slog.SetDefault(logger)
		return logger, func() {}, nil
	}

	f, err := tea.LogToFile(path, "admindash")
	if err != nil {
		return nil, nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logger = slog.New(slog.NewTextHandler(f, opts))
	slog.SetDefault(logger)

	cleanup = func() {
		log.SetOutput(io.Discard)
		f.Close()
	}
	return logger, cleanup, nil
}
