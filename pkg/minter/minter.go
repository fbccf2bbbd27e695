// Package minter supplies fresh URIs for newly instantiated resources.
//
// When a caller omits an explicit URI for a new resource, the service appends
// a fresh unique suffix to its configured resource stub. The Minter interface
// keeps the suffix source injectable so tests can pin identifiers.
package minter

import "github.com/google/uuid"

// Minter produces a fresh URI from a configured stub.
type Minter interface {
	// MintURI returns stub with a fresh unique suffix appended. Each call
	// must return a distinct URI for the same stub.
	MintURI(stub string) string
}

// UUIDMinter appends a random UUID to the stub. This is the production
// implementation.
type UUIDMinter struct{}

// MintURI implements Minter.
func (UUIDMinter) MintURI(stub string) string {
	return stub + uuid.NewString()
}

// Fixed returns a Minter that always appends the same suffix. Test helper.
func Fixed(suffix string) Minter {
	return fixedMinter(suffix)
}

type fixedMinter string

func (f fixedMinter) MintURI(stub string) string {
	return stub + string(f)
}
