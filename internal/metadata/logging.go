package metadata

import (
	"fmt"
	"io"
	"strings"

	"github.com/Haghighatbin/echem-fairifier/internal/logging"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Meta:", PrefixColor: ui.FgRed}

// SetLogger sets an optional destination for metadata logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(recordID string, format string, args ...any) {
	logger.Logf(recordID, format, args...)
}

func summarizeValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if len(s) > 80 {
			s = s[:77] + "..."
		}
		return fmt.Sprintf("%q", s)
	case map[string]any:
		return fmt.Sprintf("map(len=%d)", len(t))
	default:
		return fmt.Sprintf("%T", v)
	}
}
