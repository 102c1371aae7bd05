package simulator

import "errors"

// BufferSize is the fixed transport buffer the original C-ABI
// get_simulation_events contract uses (spec.md §6): the whole JSON
// event array plus a NUL terminator must fit in this many bytes.
const BufferSize = 1024

// ErrBufferOverflow is returned when the serialized event log plus its
// NUL terminator would not fit in BufferSize bytes. Spec.md §7 treats
// this as fatal by design: the UI contract requires the entire event
// list in one read.
var ErrBufferOverflow = errors.New("simulator: serialized event log exceeds transport buffer")

// Shim registers the device-side function names spec.md §6 documents
// under their C-ABI spelling, backed by a Device (and, for the
// event-log accessors, the EventLog a SimDevice owns). It is the seam
// a WASM host or CLI calls through; the transcoder itself never touches
// it.
type Shim struct {
	Device
	log *EventLog // nil when backed by a non-simulating Device
}

// NewShim wraps dev. If dev is a *SimDevice, the event-log accessors
// (ClearSimulationEvents, GetSimulationEvents, ...) operate on its log;
// otherwise they report an empty, immutable log.
func NewShim(dev Device) *Shim {
	s := &Shim{Device: dev}
	if sim, ok := dev.(*SimDevice); ok {
		s.log = sim.Log()
	}
	return s
}

// BlGpioEnableInput is `bl_gpio_enable_input(pin, pullup, pulldown)`.
func (s *Shim) BlGpioEnableInput(pin, pullup, pulldown uint8) int32 {
	return s.EnableInput(pin, pullup, pulldown)
}

// BlGpioEnableOutput is `bl_gpio_enable_output(pin, pullup, pulldown)`.
func (s *Shim) BlGpioEnableOutput(pin, pullup, pulldown uint8) int32 {
	return s.EnableOutput(pin, pullup, pulldown)
}

// BlGpioOutputSet is `bl_gpio_output_set(pin, value)`.
func (s *Shim) BlGpioOutputSet(pin, value uint8) int32 {
	return s.OutputSet(pin, value)
}

// BleNplTimeDelay is `ble_npl_time_delay(ticks)`.
func (s *Shim) BleNplTimeDelay(ticks uint32) {
	s.TimeDelay(ticks)
}

// BleNplTimeMsToTicks32 is `ble_npl_time_ms_to_ticks32(ms)`.
func (s *Shim) BleNplTimeMsToTicks32(ms uint32) uint32 {
	return s.MsToTicks(ms)
}

// ClearSimulationEvents is `clear_simulation_events()`.
func (s *Shim) ClearSimulationEvents() {
	if s.log != nil {
		s.log.Clear()
	}
}

// GetSimulationEvents is the Go-native accessor the C-ABI function
// wraps: the serialized JSON event array, with no fixed-size or NUL-
// termination constraint (spec.md §9's "clean redesign" alternative).
func (s *Shim) GetSimulationEvents() ([]byte, error) {
	if s.log == nil {
		return []byte("[]"), nil
	}
	return s.log.JSON()
}

// GetSimulationEventsBuffer reproduces the original C-ABI contract
// exactly: the JSON array, NUL-terminated, copied into a fixed
// BufferSize-byte buffer. n is the number of meaningful bytes written
// (including the trailing NUL). Fails with ErrBufferOverflow if the
// serialization does not fit, matching spec.md §6/§7's documented
// assert-on-overflow behavior.
func (s *Shim) GetSimulationEventsBuffer() (buf [BufferSize]byte, n int, err error) {
	data, err := s.GetSimulationEvents()
	if err != nil {
		return buf, 0, err
	}
	if len(data)+1 > BufferSize {
		return buf, 0, ErrBufferOverflow
	}
	copy(buf[:], data)
	buf[len(data)] = 0
	return buf, len(data) + 1, nil
}
