// Package utils holds small helpers shared by the vault packages.
package utils

import "github.com/google/uuid"

// EntryIDGenerator issues entry ids. Version 7 ids sort by creation time, so
// ids line up with the insertion order of the vault in logs.
type EntryIDGenerator struct {
	newTimeOrdered func() (uuid.UUID, error)
	newRandom      func() (uuid.UUID, error)
}

func NewEntryIDGenerator() *EntryIDGenerator {
	return &EntryIDGenerator{
		newTimeOrdered: uuid.NewV7,
		newRandom:      uuid.NewRandom,
	}
}

// Generate returns a UUIDv7 string. When the clock-based source fails it
// falls back to a random v4 id; if that fails as well the process has no
// entropy left and Generate panics, like uuid.New.
func (g *EntryIDGenerator) Generate() string {
	if id, err := g.newTimeOrdered(); err == nil {
		return id.String()
	}
	return uuid.Must(g.newRandom()).String()
}
