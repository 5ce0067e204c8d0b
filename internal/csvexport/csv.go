// Package csvexport renders analytics exports as CSV text.
//
// Every field is wrapped in double quotes and rows are joined with "\n", header first.
// Embedded quotes are not escaped, matching what the back-office download has always
// produced.
package csvexport

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

// Serialize renders header followed by rows. Rows are expected to have the header's length.
func Serialize(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f)
		b.WriteByte('"')
	}
}

// FormatTime renders t as YYYY-MM-DD for day-grained exports and as an RFC 3339 timestamp
// otherwise. A nil or zero time renders as an empty field.
func FormatTime(t *time.Time, dayGrained bool) string {
	if t == nil || t.IsZero() {
		return ""
	}
	if dayGrained {
		return t.Format(dateLayout)
	}
	return t.Format(timestampLayout)
}

// AnalyticsFilename is the suggested download name for an analytics export.
func AnalyticsFilename(now time.Time) string {
	return fmt.Sprintf("analytics-%d.csv", now.UnixMilli())
}

// MembershipsFilename is the suggested download name for a memberships export.
func MembershipsFilename(status string, now time.Time) string {
	return fmt.Sprintf("memberships-%s-%d.csv", status, now.UnixMilli())
}
