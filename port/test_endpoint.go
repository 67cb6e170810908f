package port

import (
	"io"
	"sync"
	"time"
)

// TestEndpoint is a test helper that simulates a blocking serial endpoint
// using channels. It is needed because the channel tasks block inside Read
// and ReadWait, and tests must be able to feed data (or an error) into those
// calls at a chosen moment, like a real serial device would.
type TestEndpoint struct {
	mu       sync.Mutex
	readChan chan []byte
	writes   [][]byte
	writeErr error
	closed   bool
}

// NewTestEndpoint creates a new test endpoint.
// Exported for use in tests of other packages.
func NewTestEndpoint() *TestEndpoint {
	return &TestEndpoint{
		readChan: make(chan []byte, 10),
	}
}

// Read blocks until data is queued via SendData or the endpoint is closed.
// Each SendData call is delivered as one Read.
func (t *TestEndpoint) Read(p []byte) (int, error) {
	data, ok := <-t.readChan
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

// ReadWait waits up to timeout for queued data. Closing the endpoint while a
// ReadWait is in flight yields WaitError with io.EOF.
func (t *TestEndpoint) ReadWait(p []byte, timeout time.Duration) (int, WaitStatus, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case data, ok := <-t.readChan:
		if !ok {
			return 0, WaitError, io.EOF
		}
		return copy(p, data), WaitData, nil
	case <-timer.C:
		return 0, WaitTimeout, nil
	}
}

func (t *TestEndpoint) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	t.writes = append(t.writes, buf)
	return len(p), nil
}

func (t *TestEndpoint) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.readChan)
	return nil
}

// SendData queues data to be returned by the next Read or ReadWait.
// This simulates bytes arriving from the peer device.
func (t *TestEndpoint) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.readChan <- []byte(data)
	}
}

// FailWrites makes all subsequent Write calls return err.
func (t *TestEndpoint) FailWrites(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeErr = err
}

// Writes returns a copy of everything written to the endpoint so far.
func (t *TestEndpoint) Writes() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]byte, len(t.writes))
	copy(out, t.writes)
	return out
}

// Written returns all bytes written to the endpoint, concatenated.
func (t *TestEndpoint) Written() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []byte
	for _, w := range t.writes {
		out = append(out, w...)
	}
	return out
}
