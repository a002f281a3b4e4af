package wspr

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Diagnostics go to stderr so stdout stays clean for the tone list,
// which is usually piped to something else.
var logger = NewLogger(os.Stderr)

func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "wsprgen",
		Level:  log.InfoLevel,
	})
}

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	logger = l
}
