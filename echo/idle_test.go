package echo_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"i4.energy/across/uartecho/echo"
	"i4.energy/across/uartecho/port"
)

func TestIdleChannelRun(t *testing.T) {
	t.Run("Echoes available bytes without idle notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ep := port.NewTestEndpoint()
		opener := port.NewMockOpener(ctrl)
		opener.EXPECT().Open(gomock.Any()).Return(ep, nil)

		c := &echo.IdleChannel{Name: "channel2", Opener: opener, Timeout: time.Second}

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.Run(context.Background())
		}()

		ep.SendData("hello")

		writes := waitForWrites(t, ep, 1)
		if string(writes[0]) != "hello" {
			t.Errorf("expected %q echoed back, got %q", "hello", writes[0])
		}

		ep.Close()
		if err := waitForErr(t, errCh); !errors.Is(err, io.EOF) {
			t.Errorf("expected wait failure to surface io.EOF, got: %v", err)
		}
	})

	t.Run("Partial read is bounded by the buffer capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ep := port.NewTestEndpoint()
		defer ep.Close()

		opener := port.NewMockOpener(ctrl)
		opener.EXPECT().Open(gomock.Any()).Return(ep, nil)

		c := &echo.IdleChannel{Name: "channel2", Opener: opener, Timeout: time.Second, BufferSize: 4}

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.Run(context.Background())
		}()

		ep.SendData("abcdefg")

		writes := waitForWrites(t, ep, 1)
		if string(writes[0]) != "abcd" {
			t.Errorf("expected at most 4 bytes echoed, got %q", writes[0])
		}
	})

	t.Run("Idle notice repeats across consecutive idle cycles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ep := port.NewTestEndpoint()
		defer ep.Close()

		opener := port.NewMockOpener(ctrl)
		opener.EXPECT().Open(gomock.Any()).Return(ep, nil)

		c := &echo.IdleChannel{Name: "channel2", Opener: opener, Timeout: 50 * time.Millisecond}

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.Run(context.Background())
		}()

		writes := waitForWrites(t, ep, 2)
		for i := 0; i < 2; i++ {
			notice := string(writes[i])
			if !strings.Contains(notice, "channel2: no data for") {
				t.Errorf("write %d: expected idle notice, got %q", i, notice)
			}
		}

		// The task is still running after idle cycles; data still echoes.
		ep.SendData("ping")
		deadline := time.Now().Add(2 * time.Second)
		for !strings.Contains(string(ep.Written()), "ping") {
			if time.Now().After(deadline) {
				t.Fatal("expected data echoed after idle cycles")
			}
			time.Sleep(5 * time.Millisecond)
		}
	})

	t.Run("Open failure terminates the task with a diagnostic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		opener := port.NewMockOpener(ctrl)
		opener.EXPECT().Open(gomock.Any()).
			Return(nil, errors.New("open serial port /dev/ttyS1: no such device"))

		c := &echo.IdleChannel{Name: "channel2", Opener: opener}

		err := c.Run(context.Background())
		if err == nil {
			t.Fatal("expected error from open failure")
		}
		if !strings.Contains(err.Error(), "/dev/ttyS1") {
			t.Errorf("expected error to name the endpoint path, got: %v", err)
		}
	})
}
