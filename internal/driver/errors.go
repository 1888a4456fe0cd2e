package driver

import "errors"

// ConnectionError means the backend could not be reached or rejected the credentials.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return "connection failed: " + e.Err.Error() }

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError means the aggregation query failed or returned an unexpected shape.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return "query failed: " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

func IsConnectionError(err error) bool {
	var target *ConnectionError
	return errors.As(err, &target)
}

func IsQueryError(err error) bool {
	var target *QueryError
	return errors.As(err, &target)
}
