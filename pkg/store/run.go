package store

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pierrec/lz4"
	"golang.org/x/crypto/blake2b"
)

// Run is one completed transcode(+simulate) invocation, the unit a
// RunStore persists and retrieves (SPEC_FULL.md's Run Store module). The
// replay server stores one per submission; the CLI commands store none.
type Run struct {
	// AST is the program's JSON-encoded ast.Program, as fed to the
	// transcoder.
	AST []byte
	// ULisp is the transcoded uLisp source text.
	ULisp string
	// Events is the JSON-encoded simulator event log, nil if the run
	// was transcode-only.
	Events []byte
}

// runKey is the on-disk envelope: Run plus nothing else, kept separate
// from Run so callers never need to think about the storage encoding.
type runKey struct {
	AST    []byte `json:"ast"`
	ULisp  string `json:"ulisp"`
	Events []byte `json:"events,omitempty"`
}

// ContentHash returns the blake2b-256 digest of r's canonical JSON
// encoding, the key a RunStore files the run under.
func (r Run) ContentHash() ([32]byte, error) {
	data, err := json.Marshal(runKey{AST: r.AST, ULisp: r.ULisp, Events: r.Events})
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

// compress lz4-compresses data, grounded on the teacher's use of
// pierrec/lz4 for block compression elsewhere in its dependency stack.
func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompress reverses compress.
func decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}

// RunStore persists Run records in a Store, content-addressed by
// ContentHash and lz4-compressed on disk.
type RunStore struct {
	backend Store
}

// NewRunStore wraps backend as a RunStore.
func NewRunStore(backend Store) *RunStore {
	return &RunStore{backend: backend}
}

// Put stores run and returns the content-addressed key it was filed
// under; storing the same run twice returns the same key and is a no-op
// write.
func (s *RunStore) Put(run Run) ([]byte, error) {
	hash, err := run.ContentHash()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(runKey{AST: run.AST, ULisp: run.ULisp, Events: run.Events})
	if err != nil {
		return nil, err
	}
	packed, err := compress(data)
	if err != nil {
		return nil, err
	}
	key := hash[:]
	if err := s.backend.Put(key, packed); err != nil {
		return nil, err
	}
	return key, nil
}

// Get retrieves the run stored under key.
func (s *RunStore) Get(key []byte) (Run, error) {
	packed, err := s.backend.Get(key)
	if err != nil {
		return Run{}, err
	}
	data, err := decompress(packed)
	if err != nil {
		return Run{}, err
	}
	var rk runKey
	if err := json.Unmarshal(data, &rk); err != nil {
		return Run{}, err
	}
	return Run{AST: rk.AST, ULisp: rk.ULisp, Events: rk.Events}, nil
}

// Close releases the underlying backend.
func (s *RunStore) Close() error {
	return s.backend.Close()
}
