// Package simulate implements `ulispc simulate`: transcode a script,
// then interpret the `bl_*`/`ble_*` calls its own AST issues against the
// in-memory SimDevice, printing the captured JSON event stream (spec.md
// §6/§8 Scenario D/E).
package simulate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/log"
	"github.com/lupyuen/ulispc/pkg/simulator"
	"github.com/lupyuen/ulispc/pkg/transcoder"
)

// NewCommands returns the `simulate` command.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "simulate",
			Usage:     "Transcode a script and replay its device calls against the simulator",
			UsageText: "ulispc simulate --in script.ast.json",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "in", Usage: "path to the AST JSON input"},
			},
			Action: run,
		},
	}
}

func run(c *cli.Context) error {
	in := c.String("in")
	if in == "" {
		return cli.NewExitError("missing required --in flag", 1)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("reading %s: %w", in, err), 1)
	}

	var program ast.Program
	if err := json.Unmarshal(data, &program); err != nil {
		return cli.NewExitError(fmt.Errorf("parsing %s: %w", in, err), 1)
	}

	logger, err := log.New(false)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer logger.Sync()

	if _, err := transcoder.Transcode(program, transcoder.WithLogger(logger.Sugar())); err != nil {
		return cli.NewExitError(err, 1)
	}

	dev := simulator.NewSimDevice()
	shim := simulator.NewShim(dev)
	if err := interpret(program, shim); err != nil {
		return cli.NewExitError(err, 1)
	}

	events, err := shim.GetSimulationEvents()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(c.App.Writer, string(events))
	return nil
}
