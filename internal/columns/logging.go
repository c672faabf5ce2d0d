package columns

import (
	"io"

	"github.com/Haghighatbin/echem-fairifier/internal/logging"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Columns:", PrefixColor: ui.FgYellow, OmitRecord: true}

// SetLogger sets an optional destination for column inference logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
