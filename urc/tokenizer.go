package urc

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// Splitter is used for tokenizing modem output into lines. It uses the
// signature of bufio.SplitFunc so it can be directly used with bufio.Scanner.
//
// It splits the input by CRLF line endings. Unlike a command/response
// tokenizer, no SMS input prompt handling is needed: the console endpoint
// only ever carries unsolicited notifications.
//
// The atEOF parameter indicates whether any more data will be available.
// When true, any remaining data is returned as the final token.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.Index(data, []byte(CRLF)); i >= 0 {
		return i + len(CRLF), data[0:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = Splitter

// Decode maps one line of modem output to a typed event. Lines that carry no
// recognized URC — including the reserved notification prefixes — return
// (nil, false); that is a normal outcome, never an error.
func Decode(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	switch line {
	case UrcSMSReady:
		return SystemReady{Subsystem: "SMS"}, true
	case CallBusy:
		return CallState{Result: CallResultBusy}, true
	case CallNoAnswer:
		return CallState{Result: CallResultNoAnswer}, true
	case CallNoCarrier:
		return CallState{Result: CallResultNoCarrier}, true
	case CallNoDialtone:
		return CallState{Result: CallResultNoDialtone}, true
	}

	switch {
	case strings.HasPrefix(line, UrcSimState):
		return decodeSIMState(strings.TrimPrefix(line, UrcSimState)), true

	case strings.HasPrefix(line, UrcNetworkReg):
		status, err := strconv.Atoi(firstField(strings.TrimPrefix(line, UrcNetworkReg)))
		if err != nil {
			return nil, false
		}
		return NetworkState{Status: status}, true

	case strings.HasPrefix(line, UrcCallerID):
		return IncomingCall{Number: unquote(firstField(strings.TrimPrefix(line, UrcCallerID)))}, true

	case strings.HasPrefix(line, UrcNewMsg):
		rest := strings.TrimPrefix(line, UrcNewMsg)
		storage, indexStr, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, false
		}
		index, err := strconv.Atoi(strings.TrimSpace(indexStr))
		if err != nil {
			return nil, false
		}
		return NewMessage{Storage: unquote(strings.TrimSpace(storage)), Index: index}, true

	case strings.HasPrefix(line, UrcVoltage):
		// +CBC: <bcs>,<bcl>,<voltage in mV>
		fields := strings.Split(strings.TrimPrefix(line, UrcVoltage), ",")
		mv, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil {
			return nil, false
		}
		return Voltage{Millivolts: mv}, true
	}

	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(line, prefix) {
			// recognized but intentionally unhandled
			return nil, false
		}
	}

	return nil, false
}

func decodeSIMState(raw string) SIMState {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "READY":
		return SIMState{Status: SIMReady, Raw: raw}
	case "NOT INSERTED":
		return SIMState{Status: SIMNotInserted, Raw: raw}
	case "SIM PIN":
		return SIMState{Status: SIMPINRequired, Raw: raw}
	case "SIM PUK":
		return SIMState{Status: SIMPUKRequired, Raw: raw}
	case "NOT READY":
		return SIMState{Status: SIMNotRecognized, Raw: raw}
	default:
		return SIMState{Status: SIMUnknown, Raw: raw}
	}
}

// firstField returns the text before the first comma.
func firstField(s string) string {
	field, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(field)
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
