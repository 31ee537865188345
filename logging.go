package ssml

import (
	"io"

	"github.com/charmbracelet/log"
)

// Validation diagnostics are silent unless a caller installs a logger.
var logger = log.New(io.Discard)

// SetLogger routes the package's debug diagnostics (clamped attributes,
// validation traces) to l. Passing nil silences them again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
