// Package logging builds the framework logger. The logger is constructed
// once per run and handed to whoever needs it; there is no package-level
// logger to mutate.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Dir is the directory log files are appended under.
const Dir = "Logs"

// New returns a logger appending to Logs/log<date>.txt, creating the
// directory if needed. The returned closer flushes and closes the file.
func New(fsys afero.Fs) (*logrus.Logger, io.Closer, error) {
	if err := fsys.MkdirAll(Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: creating %s: %w", Dir, err)
	}
	name := fmt.Sprintf("%s/log%s.txt", Dir, time.Now().Format("2006-01-02"))
	f, err := fsys.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: opening %s: %w", name, err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return logger, f, nil
}

// Discard returns a logger that drops everything. Used by tests that only
// care about the operation under test.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
