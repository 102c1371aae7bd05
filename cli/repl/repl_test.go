package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lupyuen/ulispc/pkg/simulator"
)

type scriptedReader struct {
	lines []string
	i     int
}

func (r *scriptedReader) Readline() (string, error) {
	if r.i >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.i]
	r.i++
	return line, nil
}

func (r *scriptedReader) Close() error { return nil }

func TestREPLDispatchesScenarioDCommands(t *testing.T) {
	var out bytes.Buffer
	r := &REPL{
		out:  &out,
		shim: simulator.NewShim(simulator.NewSimDevice()),
		input: &scriptedReader{lines: []string{
			"clear",
			"gpio_output_set 11 0",
			"time_delay 1000",
			"gpio_output_set 11 1",
			"events",
			"exit",
		}},
	}

	require.NoError(t, r.Run())
	require.JSONEq(t,
		`[{"gpio_output_set":{"pin":11,"value":0}},{"time_delay":{"ticks":1000}},{"gpio_output_set":{"pin":11,"value":1}}]`,
		out.String())
}

func TestREPLReportsUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	r := &REPL{
		out:   &out,
		shim:  simulator.NewShim(simulator.NewSimDevice()),
		input: &scriptedReader{lines: []string{"frobnicate", "exit"}},
	}

	require.NoError(t, r.Run())
	require.Contains(t, out.String(), "unknown command")
}

func TestREPLReportsBadArgCount(t *testing.T) {
	var out bytes.Buffer
	r := &REPL{
		out:   &out,
		shim:  simulator.NewShim(simulator.NewSimDevice()),
		input: &scriptedReader{lines: []string{"gpio_output_set 11", "exit"}},
	}

	require.NoError(t, r.Run())
	require.Contains(t, out.String(), "usage:")
}
