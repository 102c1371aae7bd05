package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lupyuen/ulispc/cli/app"
)

func TestNewRegistersEverySubsystemCommand(t *testing.T) {
	ctl := app.New()

	var names []string
	for _, cmd := range ctl.Commands {
		names = append(names, cmd.Name)
	}
	require.ElementsMatch(t, []string{"transcode", "simulate", "serve", "repl"}, names)
}
