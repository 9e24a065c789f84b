// Package uuid hides id minting behind an interface so service tests can
// substitute predictable ids.
package uuid

import "github.com/google/uuid"

// Generator mints opaque unique id strings
type Generator interface {
	New() string
}

// GoogleUUIDGenerator produces random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New returns a fresh random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator returns the production generator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
