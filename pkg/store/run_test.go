package store_test

import (
	"path/filepath"
	"testing"

	"github.com/lupyuen/ulispc/pkg/store"
	"github.com/stretchr/testify/require"
)

func sampleRun() store.Run {
	return store.Run{
		AST:    []byte(`{"statements":[]}`),
		ULisp:  "( let* ()\n)",
		Events: []byte(`[{"gpio_output_set":{"pin":11,"value":0}}]`),
	}
}

func TestRunStorePutGetRoundTripBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.bolt")
	backend, err := store.NewBoltStore(path)
	require.NoError(t, err)

	rs := store.NewRunStore(backend)
	defer rs.Close()

	run := sampleRun()
	key, err := rs.Put(run)
	require.NoError(t, err)

	got, err := rs.Get(key)
	require.NoError(t, err)
	require.Equal(t, run, got)
}

func TestRunStorePutGetRoundTripLevel(t *testing.T) {
	backend, err := store.NewLevelStore(filepath.Join(t.TempDir(), "runs.leveldb"))
	require.NoError(t, err)

	rs := store.NewRunStore(backend)
	defer rs.Close()

	run := sampleRun()
	key, err := rs.Put(run)
	require.NoError(t, err)

	got, err := rs.Get(key)
	require.NoError(t, err)
	require.Equal(t, run, got)
}

func TestRunStorePutIsContentAddressed(t *testing.T) {
	backend, err := store.NewBoltStore(filepath.Join(t.TempDir(), "runs.bolt"))
	require.NoError(t, err)
	rs := store.NewRunStore(backend)
	defer rs.Close()

	run := sampleRun()
	key1, err := rs.Put(run)
	require.NoError(t, err)
	key2, err := rs.Put(run)
	require.NoError(t, err)
	require.Equal(t, key1, key2)
}

func TestRunStoreGetMissingKeyErrors(t *testing.T) {
	backend, err := store.NewBoltStore(filepath.Join(t.TempDir(), "runs.bolt"))
	require.NoError(t, err)
	rs := store.NewRunStore(backend)
	defer rs.Close()

	_, err = rs.Get([]byte("does-not-exist"))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBoltStoreSeekVisitsMatchingPrefixInOrder(t *testing.T) {
	backend, err := store.NewBoltStore(filepath.Join(t.TempDir(), "seek.bolt"))
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Put([]byte("run:a"), []byte("1")))
	require.NoError(t, backend.Put([]byte("run:b"), []byte("2")))
	require.NoError(t, backend.Put([]byte("other"), []byte("3")))

	var keys []string
	backend.Seek([]byte("run:"), func(k, v []byte) {
		keys = append(keys, string(k))
	})
	require.Equal(t, []string{"run:a", "run:b"}, keys)
}
