package archive

import (
	"io"

	"github.com/Haghighatbin/echem-fairifier/internal/logging"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Archive:", PrefixColor: ui.FgGreen}

// SetLogger sets an optional destination for archive logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(recordID string, format string, args ...any) {
	logger.Logf(recordID, format, args...)
}
