// Package ids produces identifiers for synthesized zones and windows.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID issues random v4 identifiers
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence issues "<prefix>-1", "<prefix>-2", ... and is deterministic
type Sequence struct {
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

func (s *Sequence) NewID() string {
	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	s.next++
	return id
}
