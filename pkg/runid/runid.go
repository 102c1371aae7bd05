// Package runid generates unique, short, shareable run identifiers
// (SPEC_FULL.md's Run Identity module). The replay server returns one
// for each submitted script; it is not the key pkg/store files the Run
// under (that key is the Run's content hash).
package runid

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// ID is a run identifier: a UUIDv4 underneath, displayed base58-encoded
// so it's shorter and URL/terminal-safe without escaping.
type ID struct {
	raw uuid.UUID
}

// New generates a fresh random ID.
func New() ID {
	return ID{raw: uuid.New()}
}

// String returns the base58 display form.
func (id ID) String() string {
	return base58.Encode(id.raw[:])
}

// Parse decodes a base58 display form back into an ID.
func Parse(s string) (ID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return ID{}, err
	}
	raw, err := uuid.FromBytes(b)
	if err != nil {
		return ID{}, err
	}
	return ID{raw: raw}, nil
}
