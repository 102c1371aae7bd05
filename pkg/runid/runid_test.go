package runid_test

import (
	"testing"

	"github.com/lupyuen/ulispc/pkg/runid"
	"github.com/stretchr/testify/require"
)

func TestNewIDsAreDistinct(t *testing.T) {
	a := runid.New()
	b := runid.New()
	require.NotEqual(t, a.String(), b.String())
}

func TestParseRoundTripsString(t *testing.T) {
	id := runid.New()

	parsed, err := runid.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id.String(), parsed.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := runid.Parse("0OIl-not-base58")
	require.Error(t, err)
}
