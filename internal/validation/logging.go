package validation

import (
	"io"

	"github.com/Haghighatbin/echem-fairifier/internal/logging"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Validation Report:", PrefixColor: ui.FgCyan}

// SetLogger sets an optional destination for validation logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(recordID string, format string, args ...any) {
	logger.Logf(recordID, format, args...)
}
