// Package repl implements `ulispc repl`: an interactive console for
// driving the simulator step by step, grounded on the teacher's cli/vm
// debugger console (readline-backed, shellquote-tokenized commands).
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/lupyuen/ulispc/pkg/simulator"
)

// NewCommands returns the `repl` command.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "repl",
			Usage:     "Interactively drive the simulator",
			UsageText: "ulispc repl",
			Action:    run,
		},
	}
}

func run(c *cli.Context) error {
	r := New(c.App.Writer)
	return r.Run()
}

// REPL reads command lines and dispatches them against a SimDevice.
type REPL struct {
	out   io.Writer
	shim  *simulator.Shim
	input lineReader
}

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// New returns a REPL writing output to out. If stdin is a terminal, it
// is driven via chzyer/readline (prompt, history, completion); otherwise
// (piped input, CI) it falls back to bufio.Scanner, matching the
// teacher's own terminal-capability probing before handing control to
// readline.
func New(out io.Writer) *REPL {
	r := &REPL{out: out, shim: simulator.NewShim(simulator.NewSimDevice())}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{Prompt: "ulispc> "})
		if err == nil {
			r.input = rl
			return r
		}
	}
	r.input = &scannerReader{s: bufio.NewScanner(os.Stdin)}
	return r
}

type scannerReader struct {
	s *bufio.Scanner
}

func (r *scannerReader) Readline() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

func (r *scannerReader) Close() error { return nil }

// Run reads and dispatches command lines until EOF, interrupt, or an
// "exit" command.
func (r *REPL) Run() error {
	defer r.input.Close()
	for {
		line, err := r.input.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: failed to read input: %w", err)
		}

		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			return nil
		}
		if err := r.dispatch(args); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *REPL) dispatch(args []string) error {
	switch args[0] {
	case "gpio_output_set":
		pin, value, err := twoUint8(args)
		if err != nil {
			return err
		}
		r.shim.BlGpioOutputSet(pin, value)
		return nil
	case "time_delay":
		ticks, err := oneUint32(args)
		if err != nil {
			return err
		}
		r.shim.BleNplTimeDelay(ticks)
		return nil
	case "clear":
		r.shim.ClearSimulationEvents()
		return nil
	case "events":
		data, err := r.shim.GetSimulationEvents()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func twoUint8(args []string) (uint8, uint8, error) {
	if len(args) != 3 {
		return 0, 0, fmt.Errorf("usage: %s <pin> <value>", args[0])
	}
	pin, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return 0, 0, err
	}
	value, err := strconv.ParseUint(args[2], 10, 8)
	if err != nil {
		return 0, 0, err
	}
	return uint8(pin), uint8(value), nil
}

func oneUint32(args []string) (uint32, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("usage: %s <ticks>", args[0])
	}
	v, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
