// Package idgen hands out positive int64 row ids derived from random UUIDs.
package idgen

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Generator returns a fresh id on every call.
type Generator interface {
	NewID() int64
}

// UUIDGenerator takes 63 random bits of a v4 UUID.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() int64 {
	for {
		u := uuid.New()
		id := int64(binary.BigEndian.Uint64(u[:8]) >> 1)
		if id != 0 {
			return id
		}
	}
}

// Sequence is a deterministic generator for tests.
type Sequence struct {
	next int64
}

// NewSequence starts counting at start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) NewID() int64 {
	id := s.next
	s.next++
	return id
}
