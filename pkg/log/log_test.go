package log_test

import (
	"testing"

	"github.com/lupyuen/ulispc/pkg/log"
	"github.com/lupyuen/ulispc/pkg/transcoder"
	"github.com/stretchr/testify/require"
)

func TestNewProductionLoggerSugaredSatisfiesTranscoderLogger(t *testing.T) {
	l, err := log.New(false)
	require.NoError(t, err)
	defer l.Sync()

	var _ transcoder.Logger = l.Sugar()
}

func TestNewDevelopmentLoggerBuilds(t *testing.T) {
	l, err := log.New(true)
	require.NoError(t, err)
	defer l.Sync()
}
