// Package simulator implements the Simulator Shim boundary (spec.md §6,
// §9): the host-side stand-ins for the device functions a transcoded
// uLisp program calls (`bl_gpio_enable_output`, `ble_npl_time_delay`,
// ...), and the JSON event capture a UI replays.
package simulator

// Device is the small total interface spec.md §9 describes: every
// device-side function the transcoded program can call, with two
// implementations — HardwareDevice (a no-op stand-in; the real
// peripheral driver is outside this module's scope) and SimDevice
// (captures calls into an EventLog for UI replay). The transcoder and
// its CLI/WASM callers are independent of which is registered.
type Device interface {
	// EnableInput configures pin as an input, with the given pull
	// resistor configuration. Returns a status code (0 = ok), matching
	// the C-ABI convention of the functions it stands in for.
	EnableInput(pin, pullup, pulldown uint8) int32
	// EnableOutput configures pin as an output.
	EnableOutput(pin, pullup, pulldown uint8) int32
	// OutputSet drives pin to value.
	OutputSet(pin, value uint8) int32
	// TimeDelay sleeps for the given number of system ticks.
	TimeDelay(ticks uint32)
	// MsToTicks converts milliseconds to system ticks. 1 tick is 1 ms,
	// per the NimBLE Porting Layer convention spec.md §6 documents.
	MsToTicks(ms uint32) uint32
}

// HardwareDevice is the real-device stand-in: every call returns the
// conventional "ok" status and otherwise does nothing, since driving
// actual GPIO pins is outside this module's scope (spec.md §1's
// peripheral boundary).
type HardwareDevice struct{}

func (HardwareDevice) EnableInput(_, _, _ uint8) int32  { return 0 }
func (HardwareDevice) EnableOutput(_, _, _ uint8) int32 { return 0 }
func (HardwareDevice) OutputSet(_, _ uint8) int32       { return 0 }
func (HardwareDevice) TimeDelay(_ uint32)               {}
func (HardwareDevice) MsToTicks(ms uint32) uint32       { return ms }
