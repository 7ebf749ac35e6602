// Package requesttrace assigns the request id that ties edge logs to
// upstream logs.
package requesttrace

import "github.com/google/uuid"

// Header carries the request id in both directions.
const Header = "X-Request-Id"

const maxIDLength = 128

// FromHeader returns the client-supplied id when it is safe to echo back and
// log, and a fresh UUID otherwise.
func FromHeader(supplied string) string {
	if Valid(supplied) {
		return supplied
	}
	return uuid.NewString()
}

// Valid reports whether id is non-empty, at most 128 bytes, and made of
// letters, digits, '-', '_', '.' or ':'.
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
