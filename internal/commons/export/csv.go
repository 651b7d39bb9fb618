package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV streams a header row followed by data rows. Download endpoints
// return the raw bytes; the console wraps them as a file download.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
