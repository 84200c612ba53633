package web

import "strings"

// GetErrorHint returns a helpful hint for common engine errors, for
// display alongside an error message in the inspector UI.
// Returns an empty string if no hint is available.
func GetErrorHint(err string) string {
	errLower := strings.ToLower(err)

	switch {
	case strings.Contains(errLower, "duplicate key"):
		return "A row with this id already exists."
	case strings.Contains(errLower, "out of range"):
		return "The database file may be corrupt or truncated."
	case strings.Contains(errLower, "not a multiple of page size"):
		return "The database file is corrupt: its length is not a whole number of pages."
	case strings.Contains(errLower, "never loaded"):
		return "Internal error: a page was flushed before it was ever read or allocated."
	default:
		return ""
	}
}
