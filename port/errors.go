package port

import "errors"

var (
	// ErrNoPortName is returned when a SerialOpener is used without a
	// device path.
	//
	// This indicates a configuration error: every channel must name the
	// serial device it owns.
	ErrNoPortName = errors.New("serial port name is required")

	// ErrClosed is returned when an operation is attempted on an Endpoint
	// that has already been closed.
	//
	// A closed Endpoint is never reused; callers hitting this error hold a
	// stale handle.
	ErrClosed = errors.New("endpoint already closed")
)
