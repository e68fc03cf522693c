package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds the diagnostics logger. It writes to out (stderr in practice)
// so stdout only carries the check result.
func New(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableQuote:     true,
		QuoteEmptyFields: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.ErrorLevel
	}
	logger.SetLevel(lvl)

	return logger
}
