// Package urc decodes Unsolicited Result Codes — asynchronous notifications
// pushed by a cellular modem outside of any command/response exchange — into
// typed events, and classifies them into log output.
package urc

const (
	// Terminal Control
	CRLF = "\r\n"

	// URC line prefixes of interest
	UrcSimState   = "+CPIN: "
	UrcNetworkReg = "+CREG: "
	UrcCallerID   = "+CLIP: "
	UrcNewMsg     = "+CMTI: "
	UrcVoltage    = "+CBC: "

	// Bare URC lines
	UrcRing     = "RING"
	UrcSMSReady = "SMS Ready"

	// Call state URCs, reported when an outgoing call ends
	CallBusy       = "BUSY"
	CallNoAnswer   = "NO ANSWER"
	CallNoCarrier  = "NO CARRIER"
	CallNoDialtone = "NO DIALTONE"
)

// Reserved URC prefixes. These are recognized modem notifications with no
// handling yet; Decode maps them to no event rather than an error.
var reservedPrefixes = []string{
	"+CFUN: ",   // phone functionality changes
	"+CGREG: ",  // GPRS registration
	"+CALA: ",   // alarm ring
	"+QIND: ",   // vendor indications (file download, FOTA lifecycle)
	"+STKPCI: ", // SIM toolkit proactive command
	UrcRing,     // bare RING; caller id arrives separately via +CLIP
}

// Event is a decoded URC. Each event kind carries a strongly-typed payload;
// the set of implementations is closed within this package.
type Event interface {
	isEvent()
}

// SystemReady reports that a modem subsystem finished initializing.
type SystemReady struct {
	Subsystem string
}

// SIMStatus enumerates the SIM card states reported via +CPIN.
type SIMStatus int

const (
	SIMReady SIMStatus = iota
	SIMNotInserted
	SIMPINRequired
	SIMPUKRequired
	SIMNotRecognized
	SIMUnknown
)

// SIMState reports a SIM card state change. Raw preserves the wire value
// for states this package does not enumerate.
type SIMState struct {
	Status SIMStatus
	Raw    string
}

// NetworkState reports a change in network registration status.
// The status value is the raw numeric code from the modem.
type NetworkState struct {
	Status int
}

// IncomingCall reports an incoming voice call with caller identification.
type IncomingCall struct {
	Number string
}

// CallResult enumerates the terminal states of an outgoing call attempt.
type CallResult int

const (
	CallResultBusy CallResult = iota
	CallResultNoAnswer
	CallResultNoCarrier
	CallResultNoDialtone
)

// CallState reports that an outgoing call attempt ended.
type CallState struct {
	Result CallResult
}

// NewMessage reports a newly received SMS stored on the modem.
// The message itself is not fetched.
type NewMessage struct {
	Storage string
	Index   int
}

// Voltage reports the module supply voltage in millivolts.
type Voltage struct {
	Millivolts int
}

func (SystemReady) isEvent()  {}
func (SIMState) isEvent()     {}
func (NetworkState) isEvent() {}
func (IncomingCall) isEvent() {}
func (CallState) isEvent()    {}
func (NewMessage) isEvent()   {}
func (Voltage) isEvent()      {}
