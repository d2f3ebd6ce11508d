package keys

import (
	"fmt"
	"strings"
	"time"
)

// sanitizeKey replaces spaces with hyphens and lowercases the string.
// You could expand this to strip other characters if needed.
func sanitizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// timestamp is the file-name portion of an archive key. UTC so keys sort the
// same regardless of where the exporter runs.
func timestamp(ts time.Time) string {
	return ts.UTC().Format("20060102T150405Z")
}

// RawResponse returns the archive key for the raw API response body of one run.
func RawResponse(city string, ts time.Time) string {
	return fmt.Sprintf("raw/%s/%s.json", sanitizeKey(city), timestamp(ts))
}

// CSV returns the archive key for the CSV produced by one run.
func CSV(city string, ts time.Time) string {
	return fmt.Sprintf("csv/%s/%s.csv", sanitizeKey(city), timestamp(ts))
}
