// Package normalize reduces raw page-path strings from the reporting API to a
// canonical form used as the deduplication key for the navigation graph.
package normalize

import "strings"

// Clean maps a raw path to its canonical form: the query string is dropped and
// the result is bounded by a leading and trailing slash. The second return is
// false when the value is not a site-relative path at all (a full URL leaked
// into the dimension), in which case the row should be discarded.
//
// Clean is pure; calling it on its own output is a no-op.
func Clean(raw string) (string, bool) {
	if strings.HasPrefix(raw, "http") || strings.HasPrefix(raw, "/http") {
		return "", false
	}

	if i := strings.IndexByte(raw, '?'); i != -1 {
		raw = raw[:i]
	}

	// Trailing slash first, then re-check the front: an empty path becomes
	// just "/" instead of "//".
	if !strings.HasPrefix(raw, "/") {
		raw += "/"
		if !strings.HasPrefix(raw, "/") {
			raw = "/" + raw
		}
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	return raw, true
}
