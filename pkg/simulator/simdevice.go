package simulator

// SimDevice is the Device implementation that captures device calls
// into an EventLog instead of driving real hardware, for host-side
// simulation and UI replay (spec.md §6).
type SimDevice struct {
	log *EventLog
}

// NewSimDevice returns a SimDevice with a fresh, empty event log.
func NewSimDevice() *SimDevice {
	return &SimDevice{log: &EventLog{}}
}

// Log returns the event log this device appends to.
func (d *SimDevice) Log() *EventLog { return d.log }

func (d *SimDevice) EnableInput(_, _, _ uint8) int32  { return 0 }
func (d *SimDevice) EnableOutput(_, _, _ uint8) int32 { return 0 }

// OutputSet appends a gpio_output_set event and returns 0.
func (d *SimDevice) OutputSet(pin, value uint8) int32 {
	d.log.Append(gpioOutputSetEvent(pin, value))
	return 0
}

// TimeDelay appends a time_delay event.
func (d *SimDevice) TimeDelay(ticks uint32) {
	d.log.Append(timeDelayEvent(ticks))
}

// MsToTicks converts milliseconds to ticks. 1 tick is 1 ms.
func (d *SimDevice) MsToTicks(ms uint32) uint32 { return ms }
