package simulator_test

import (
	"testing"

	"github.com/lupyuen/ulispc/pkg/simulator"
	"github.com/stretchr/testify/require"
)

// TestScenarioD_EventStream matches spec.md §8 Scenario D exactly.
func TestScenarioD_EventStream(t *testing.T) {
	shim := simulator.NewShim(simulator.NewSimDevice())

	shim.ClearSimulationEvents()
	shim.BlGpioOutputSet(11, 0)
	shim.BleNplTimeDelay(1000)
	shim.BlGpioOutputSet(11, 1)

	got, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"gpio_output_set":{"pin":11,"value":0}},{"time_delay":{"ticks":1000}},{"gpio_output_set":{"pin":11,"value":1}}]`,
		string(got))
}

// TestScenarioE_TicksConversion matches spec.md §8 Scenario E.
func TestScenarioE_TicksConversion(t *testing.T) {
	shim := simulator.NewShim(simulator.NewSimDevice())
	require.Equal(t, uint32(1000), shim.BleNplTimeMsToTicks32(1000))
}

func TestGetSimulationEventsIsIdempotentBetweenMutations(t *testing.T) {
	shim := simulator.NewShim(simulator.NewSimDevice())
	shim.BlGpioOutputSet(1, 1)

	first, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	second, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestClearThenAppendNYieldsArrayOfLengthN(t *testing.T) {
	dev := simulator.NewSimDevice()
	shim := simulator.NewShim(dev)

	shim.BlGpioOutputSet(1, 1)
	shim.ClearSimulationEvents()
	for i := 0; i < 3; i++ {
		shim.BleNplTimeDelay(uint32(i))
	}

	require.Equal(t, 3, dev.Log().Len())
	data, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	require.JSONEq(t, `[{"time_delay":{"ticks":0}},{"time_delay":{"ticks":1}},{"time_delay":{"ticks":2}}]`, string(data))
}

func TestGetSimulationEventsBufferOverflows(t *testing.T) {
	dev := simulator.NewSimDevice()
	shim := simulator.NewShim(dev)
	for i := 0; i < 200; i++ {
		shim.BlGpioOutputSet(uint8(i), uint8(i))
	}

	_, _, err := shim.GetSimulationEventsBuffer()
	require.ErrorIs(t, err, simulator.ErrBufferOverflow)
}

func TestGetSimulationEventsBufferNulTerminates(t *testing.T) {
	dev := simulator.NewSimDevice()
	shim := simulator.NewShim(dev)
	shim.BlGpioOutputSet(11, 0)

	buf, n, err := shim.GetSimulationEventsBuffer()
	require.NoError(t, err)
	require.Equal(t, byte(0), buf[n-1])
}

func TestHardwareDeviceShimHasNoEventLog(t *testing.T) {
	shim := simulator.NewShim(simulator.HardwareDevice{})
	shim.BlGpioOutputSet(1, 1) // no-op, nothing to capture

	data, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}
