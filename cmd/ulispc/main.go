// Command ulispc transcodes script ASTs to uLisp and drives the
// host-side simulator, grounded on the teacher's cli/main.go entry
// point.
package main

import (
	"fmt"
	"os"

	"github.com/lupyuen/ulispc/cli/app"
)

func main() {
	ctl := app.New()
	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
