// Package app assembls the ulispc command-line App, grounded on the
// teacher's cli/app package (New() *cli.App aggregating each subsystem's
// NewCommands()).
package app

import (
	"os"

	"github.com/urfave/cli"

	"github.com/lupyuen/ulispc/cli/repl"
	"github.com/lupyuen/ulispc/cli/serve"
	"github.com/lupyuen/ulispc/cli/simulate"
	"github.com/lupyuen/ulispc/cli/transcode"
)

// Version is the ulispc build version, set at build time the way the
// teacher sets config.Version.
var Version = "dev"

// New returns a *cli.App with every subsystem's commands wired in.
func New() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "ulispc"
	ctl.Version = Version
	ctl.Usage = "Transcode scripts to uLisp and drive the host-side simulator"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, transcode.NewCommands()...)
	ctl.Commands = append(ctl.Commands, simulate.NewCommands()...)
	ctl.Commands = append(ctl.Commands, serve.NewCommands()...)
	ctl.Commands = append(ctl.Commands, repl.NewCommands()...)
	return ctl
}
