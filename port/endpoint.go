package port

import (
	"context"
	"io"
	"time"
)

// WaitStatus is the outcome of a bounded readiness wait on an Endpoint.
//
// It replaces the classic "negative return value means failure, zero means
// timeout" convention of select(2)-style APIs with three explicit outcomes
// that callers must handle distinctly.
type WaitStatus int

const (
	// WaitData means at least one byte was available and has been read.
	WaitData WaitStatus = iota
	// WaitTimeout means the wait expired without any data arriving.
	// This is not an error condition.
	WaitTimeout
	// WaitError means the wait or the subsequent read failed.
	WaitError
)

func (s WaitStatus) String() string {
	switch s {
	case WaitData:
		return "data"
	case WaitTimeout:
		return "timeout"
	case WaitError:
		return "error"
	default:
		return "unknown"
	}
}

// Endpoint represents an open, bidirectional serial byte-stream device.
//
// An Endpoint is owned exclusively by the task that opened it: it is opened,
// used and closed within a single goroutine and is never shared. Read blocks
// until at least one byte is available; partial reads are normal. A closed
// Endpoint must never be reused.
type Endpoint interface {
	io.ReadWriteCloser

	// ReadWait waits up to timeout for the endpoint to become readable and,
	// if data arrives in time, reads up to len(p) bytes into p in a single
	// call. The returned WaitStatus distinguishes data-ready, timeout and
	// error; n is only meaningful when the status is WaitData.
	ReadWait(p []byte, timeout time.Duration) (n int, status WaitStatus, err error)
}

// Opener opens an Endpoint to a serial device.
//
// Opener abstracts how the device connection is created (a real serial port,
// or a test double) and is intended to be used once, at task start. Once an
// Endpoint is obtained, the Opener is no longer needed.
type Opener interface {
	// Open creates and returns a connected Endpoint. It should respect
	// cancellation provided by the context and return an error naming the
	// device if the endpoint cannot be opened.
	Open(ctx context.Context) (Endpoint, error)
}
