package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
)

////////////////////////////////////////////////////////////////////////////////

var csvHeader = []string{"Date", "Time", "Text", "Media URL", "Permalink", "Media Type", "Shortcode"}

// timestamp layouts the API has been seen using
var timestampLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

////////////////////////////////////////////////////////////////////////////////

// ArchiveCSV renders posts as the downloadable archive, one row per post
func ArchiveCSV(posts []threadsclient.Post) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, post := range posts {
		date, clock := splitTimestamp(post.Timestamp)
		row := []string{
			date,
			clock,
			newlineFlattener.Replace(post.Text),
			post.MediaURL,
			post.Permalink,
			post.MediaType,
			post.Shortcode,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row for post %s: %w", post.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ArchiveFilename names the download for a year
func ArchiveFilename(year int) string {
	return fmt.Sprintf("threads_archive_%d.csv", year)
}

////////////////////////////////////////////////////////////////////////////////

// splitTimestamp renders an API timestamp as DD/MM/YYYY and HH:MM:SS.
// An unparseable timestamp falls back to its raw date and time slices.
func splitTimestamp(timestamp string) (string, string) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, timestamp); err == nil {
			return ts.Format("02/01/2006"), ts.Format("15:04:05")
		}
	}

	if len(timestamp) >= 19 {
		return timestamp[:10], timestamp[11:19]
	}
	return timestamp, ""
}
