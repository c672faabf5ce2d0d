package columns

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses delimited text into a Table. The delimiter is sniffed from
// the header line (comma, semicolon or tab) and a UTF-8 byte order mark is
// dropped. Rows may be ragged.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	t := NewTable(records[0], records[1:])
	logf("read %d columns x %d rows (delimiter %q)", len(t.Columns), t.Rows(), cr.Comma)
	return t, nil
}

func sniffDelimiter(data []byte) rune {
	line, _, _ := strings.Cut(string(data), "\n")
	best, count := ',', strings.Count(line, ",")
	for _, d := range []rune{'\t', ';'} {
		if n := strings.Count(line, string(d)); n > count {
			best, count = d, n
		}
	}
	return best
}
