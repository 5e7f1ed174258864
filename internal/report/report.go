// Package report renders usage details as a flat tab-separated table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/zgpcy/azure-usage-cli/internal/consumption"
)

// Fixed table text. The row format is date, tab, cost.
const (
	headerLine    = "Date\tCost"
	separatorLine = "----------------"
	noDataLine    = "No cost data found."
	invalidLine   = "Invalid or missing data in response."
)

// Writer renders usage documents to an output stream
type Writer struct {
	out io.Writer
}

// NewWriter creates a report writer targeting out
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Render prints the header, then one row per record in the order the server
// returned them. Records missing a date or cost produce a diagnostic line
// and do not stop the remaining records from rendering. An absent or empty
// value array is not an error: the no-data line is printed instead.
func (w *Writer) Render(doc *consumption.UsageDetails) error {
	if _, err := fmt.Fprintln(w.out, headerLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.out, separatorLine); err != nil {
		return err
	}

	if doc == nil || len(doc.Value) == 0 {
		_, err := fmt.Fprintln(w.out, noDataLine)
		return err
	}

	for _, rec := range doc.Value {
		date, cost, ok := extractRow(rec)
		if !ok {
			if _, err := fmt.Fprintln(w.out, invalidLine); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w.out, "%s\t%s\n", date, cost); err != nil {
			return err
		}
	}

	return nil
}

// extractRow pulls the date and cost out of one record. ok is false when
// properties or either field is absent.
func extractRow(rec consumption.UsageRecord) (date, cost string, ok bool) {
	props := rec.Properties
	if props == nil || props.UsageStart == nil || props.PretaxCost == nil {
		return "", "", false
	}

	date = *props.UsageStart
	// usageStart is an ISO-8601 timestamp; keep the part before the T.
	// Strings without a T pass through whole.
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		date = date[:i]
	}

	return date, props.PretaxCost.String(), true
}
