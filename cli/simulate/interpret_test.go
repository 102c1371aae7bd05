package simulate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/simulator"
)

func TestInterpretScenarioDProducesExpectedEvents(t *testing.T) {
	program := ast.Program{
		Statements: []ast.Stmt{
			ast.FnCall{Call: ast.Call{Name: "clear_simulation_events"}},
			ast.FnCall{Call: ast.Call{
				Name: "bl_gpio_output_set",
				Args: []ast.Expr{ast.Stack{Index: 0}, ast.Stack{Index: 1}},
				Constants: []ast.Value{
					{Kind: ast.IntegerValue, Integer: 11},
					{Kind: ast.IntegerValue, Integer: 0},
				},
			}},
			ast.FnCall{Call: ast.Call{
				Name:      "ble_npl_time_delay",
				Args:      []ast.Expr{ast.Stack{Index: 0}},
				Constants: []ast.Value{{Kind: ast.IntegerValue, Integer: 1000}},
			}},
			ast.FnCall{Call: ast.Call{
				Name: "bl_gpio_output_set",
				Args: []ast.Expr{ast.Stack{Index: 0}, ast.Stack{Index: 1}},
				Constants: []ast.Value{
					{Kind: ast.IntegerValue, Integer: 11},
					{Kind: ast.IntegerValue, Integer: 1},
				},
			}},
		},
	}

	dev := simulator.NewSimDevice()
	shim := simulator.NewShim(dev)
	require.NoError(t, interpret(program, shim))

	events, err := shim.GetSimulationEvents()
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"gpio_output_set":{"pin":11,"value":0}},{"time_delay":{"ticks":1000}},{"gpio_output_set":{"pin":11,"value":1}}]`,
		string(events))
}

func TestInterpretSkipsUnrecognizedCalls(t *testing.T) {
	program := ast.Program{
		Statements: []ast.Stmt{
			ast.FnCall{Call: ast.Call{Name: "user_defined_fn"}},
		},
	}

	shim := simulator.NewShim(simulator.NewSimDevice())
	require.NoError(t, interpret(program, shim))
}
