package database

import (
	"errors"
	"fmt"
)

// Error types for the query layer
var (
	// ErrQuery marks a data-access failure inside one operation. The
	// operation still returns an empty, non-nil collection alongside it.
	ErrQuery = errors.New("query failed")

	// ErrInvalidSortField is returned before any SQL is built when the
	// requested ordering is not in the allow-list.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// ConnectionError reports a failure to reach the database at startup.
// Unlike query failures it is never swallowed.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("database connection: %v", e.Err)
	}
	return fmt.Sprintf("database connection to %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err came from establishing the connection.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// queryError wraps cause so that errors.Is(err, ErrQuery) holds and the
// underlying driver error is still reachable.
func queryError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrQuery, op, cause)
}
