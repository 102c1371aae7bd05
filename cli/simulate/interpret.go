package simulate

import (
	"fmt"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/simulator"
)

// interpret walks program's statements once, top to bottom, dispatching
// every recognized simulator call to shim in source order. It does not
// evaluate loop/branch conditions — spec.md's simulate scenarios are
// flat sequences of device calls (§8 Scenario D), and a full script
// interpreter is out of this command's scope.
func interpret(program ast.Program, shim *simulator.Shim) error {
	for _, stmt := range program.Statements {
		if err := interpretStmt(stmt, shim); err != nil {
			return err
		}
	}
	return nil
}

func interpretStmt(stmt ast.Stmt, shim *simulator.Shim) error {
	switch s := stmt.(type) {
	case ast.FnCall:
		return interpretCall(s.Call, shim)
	case ast.For:
		return interpretBlock(s.Loop.Body, shim)
	case ast.While:
		return interpretBlock(s.Body, shim)
	case ast.If:
		if err := interpretBlock(s.Then, shim); err != nil {
			return err
		}
		return interpretBlock(s.Else, shim)
	default:
		return nil
	}
}

func interpretBlock(stmts []ast.Stmt, shim *simulator.Shim) error {
	for _, stmt := range stmts {
		if err := interpretStmt(stmt, shim); err != nil {
			return err
		}
	}
	return nil
}

func interpretCall(call ast.Call, shim *simulator.Shim) error {
	switch call.Name {
	case "bl_gpio_enable_input", "bl_gpio_enable_output", "bl_gpio_output_set",
		"ble_npl_time_delay", "ble_npl_time_ms_to_ticks32", "clear_simulation_events":
	default:
		// Not a device call (a user-defined or transcoder-only
		// function); skip it without resolving its arguments.
		return nil
	}

	args := make([]int64, len(call.Args))
	for i, arg := range call.Args {
		v, err := constantValue(arg, call.Constants)
		if err != nil {
			return err
		}
		args[i] = v
	}

	switch call.Name {
	case "bl_gpio_enable_input":
		shim.BlGpioEnableInput(u8(args, 0), u8(args, 1), u8(args, 2))
	case "bl_gpio_enable_output":
		shim.BlGpioEnableOutput(u8(args, 0), u8(args, 1), u8(args, 2))
	case "bl_gpio_output_set":
		shim.BlGpioOutputSet(u8(args, 0), u8(args, 1))
	case "ble_npl_time_delay":
		shim.BleNplTimeDelay(u32(args, 0))
	case "ble_npl_time_ms_to_ticks32":
		shim.BleNplTimeMsToTicks32(u32(args, 0))
	case "clear_simulation_events":
		shim.ClearSimulationEvents()
	default:
		// Not a device call (a user-defined or transcoder-only
		// function); the simulator has nothing to do for it.
	}
	return nil
}

func constantValue(e ast.Expr, constants []ast.Value) (int64, error) {
	switch v := e.(type) {
	case ast.IntegerConstant:
		return v.Value, nil
	case ast.Stack:
		if v.Index < 0 || v.Index >= len(constants) {
			return 0, fmt.Errorf("simulate: stack index %d out of range", v.Index)
		}
		c := constants[v.Index]
		if c.Kind != ast.IntegerValue {
			return 0, fmt.Errorf("simulate: constant at index %d is not an integer", v.Index)
		}
		return c.Integer, nil
	default:
		return 0, fmt.Errorf("simulate: unsupported argument expression %T", e)
	}
}

func u8(args []int64, i int) uint8 {
	if i >= len(args) {
		return 0
	}
	return uint8(args[i])
}

func u32(args []int64, i int) uint32 {
	if i >= len(args) {
		return 0
	}
	return uint32(args[i])
}
