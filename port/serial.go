package port

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// SerialOpener opens a serial device using go.bug.st/serial.
type SerialOpener struct {
	// PortName is the device path, e.g. "/dev/ttyS0".
	PortName string
	// Mode is the serial configuration (baud rate, parity, stop bits).
	// A nil Mode keeps the device's default configuration.
	Mode *serial.Mode
}

// Open opens the configured serial device and returns it as an Endpoint.
func (o SerialOpener) Open(ctx context.Context) (Endpoint, error) {
	if o.PortName == "" {
		return nil, ErrNoPortName
	}
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := o.Mode
	if mode == nil {
		mode = &serial.Mode{}
	}

	p, err := serial.Open(o.PortName, mode)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("open serial port %s: %w", o.PortName, err)
	}

	return &serialEndpoint{port: p, timeout: serial.NoTimeout}, nil
}

// serialEndpoint adapts a go.bug.st/serial Port to the Endpoint interface.
//
// The underlying library expresses both blocking and bounded reads through
// SetReadTimeout; the endpoint tracks the last applied timeout so Read and
// ReadWait can be freely interleaved without redundant ioctls.
type serialEndpoint struct {
	port    serial.Port
	timeout time.Duration
	closed  bool
}

func (e *serialEndpoint) setTimeout(t time.Duration) error {
	if e.timeout == t {
		return nil
	}
	if err := e.port.SetReadTimeout(t); err != nil {
		return err
	}
	e.timeout = t
	return nil
}

// Read blocks until at least one byte is available. Partial reads are normal.
func (e *serialEndpoint) Read(p []byte) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	if err := e.setTimeout(serial.NoTimeout); err != nil {
		return 0, err
	}
	return e.port.Read(p)
}

func (e *serialEndpoint) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	return e.port.Write(p)
}

// ReadWait performs a bounded wait-and-read. The library reports an expired
// read timeout as (0, nil), which is mapped to WaitTimeout here.
func (e *serialEndpoint) ReadWait(p []byte, timeout time.Duration) (int, WaitStatus, error) {
	if e.closed {
		return 0, WaitError, ErrClosed
	}
	if err := e.setTimeout(timeout); err != nil {
		return 0, WaitError, err
	}
	n, err := e.port.Read(p)
	if err != nil {
		return 0, WaitError, err
	}
	if n == 0 {
		return 0, WaitTimeout, nil
	}
	return n, WaitData, nil
}

func (e *serialEndpoint) Close() error {
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	return e.port.Close()
}
