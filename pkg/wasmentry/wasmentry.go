//go:build wasm

// Package wasmentry exposes the transcoder and simulator shim to a JS
// host via syscall/js. Kept minimal: spec.md §2/§6 scopes the WASM
// entry point as a peripheral boundary, not a module to build out.
package wasmentry

import (
	"syscall/js"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/simulator"
	"github.com/lupyuen/ulispc/pkg/transcoder"
)

var shim = simulator.NewShim(simulator.NewSimDevice())

// Register installs ulispc's JS-callable functions on js.Global(). Call
// once from main() in a //go:build wasm binary.
func Register() {
	js.Global().Set("ulispcTranscode", js.FuncOf(transcodeJS))
	js.Global().Set("ulispcGpioOutputSet", js.FuncOf(gpioOutputSetJS))
	js.Global().Set("ulispcTimeDelay", js.FuncOf(timeDelayJS))
	js.Global().Set("ulispcClearEvents", js.FuncOf(clearEventsJS))
	js.Global().Set("ulispcGetEvents", js.FuncOf(getEventsJS))
}

// transcodeJS(astJSON string) -> {ulisp: string} | {error: string}
func transcodeJS(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return errorResult("ulispcTranscode expects one argument")
	}

	var program ast.Program
	if err := program.UnmarshalJSON([]byte(args[0].String())); err != nil {
		return errorResult(err.Error())
	}

	out, err := transcoder.Transcode(program)
	if err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(map[string]any{"ulisp": out})
}

func gpioOutputSetJS(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return errorResult("ulispcGpioOutputSet expects (pin, value)")
	}
	shim.BlGpioOutputSet(uint8(args[0].Int()), uint8(args[1].Int()))
	return js.Undefined()
}

func timeDelayJS(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return errorResult("ulispcTimeDelay expects (ticks)")
	}
	shim.BleNplTimeDelay(uint32(args[0].Int()))
	return js.Undefined()
}

func clearEventsJS(_ js.Value, _ []js.Value) any {
	shim.ClearSimulationEvents()
	return js.Undefined()
}

func getEventsJS(_ js.Value, _ []js.Value) any {
	data, err := shim.GetSimulationEvents()
	if err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(string(data))
}

func errorResult(msg string) js.Value {
	return js.ValueOf(map[string]any{"error": msg})
}
