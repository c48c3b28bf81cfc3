package attachment

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Set is an ordered collection of accepted attachments.
type Set struct {
	policy Policy
	mu     sync.Mutex
	items  []Meta
}

// NewSet returns an empty set enforcing policy.
func NewSet(policy Policy) *Set {
	return &Set{policy: policy}
}

// Policy returns the limits the set enforces.
func (s *Set) Policy() Policy {
	return s.policy
}

// Add checks m against the policy and appends it. A missing ID is filled in.
func (s *Set) Add(m Meta) (Meta, error) {
	if err := s.policy.Check(m); err != nil {
		return Meta{}, err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, m)
	return m, nil
}

// Remove drops the attachment with the given ID.
func (s *Set) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(m Meta) bool { return m.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// List returns a copy of the attachments in upload order.
func (s *Set) List() []Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Names returns the file names in upload order.
func (s *Set) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.items))
	for i, m := range s.items {
		names[i] = m.Name
	}
	return names
}

// Clear empties the set.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// RequireAny returns ErrNone when the set is empty.
func (s *Set) RequireAny() error {
	if s.Len() == 0 {
		return ErrNone
	}
	return nil
}
