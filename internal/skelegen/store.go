package skelegen

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoDraft is returned when a draft operation runs outside edit mode
var ErrNoDraft = errors.New("no component is being edited")

// ComponentStore holds the committed components and at most one draft.
// Edits go to a deep copy and only become visible on Save.
type ComponentStore struct {
	mu         sync.RWMutex
	components []Component
	draft      *Component
}

// NewComponentStore creates a store over a copy of components
func NewComponentStore(components []Component) *ComponentStore {
	s := &ComponentStore{components: make([]Component, len(components))}
	for i, c := range components {
		s.components[i] = c.Clone()
	}
	return s
}

// Components returns a copy of the committed components
func (s *ComponentStore) Components() []Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Component, len(s.components))
	for i, c := range s.components {
		out[i] = c.Clone()
	}
	return out
}

// Get returns a copy of the committed component with the given id
func (s *ComponentStore) Get(id string) (Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.components {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return Component{}, false
}

// Add commits a new component
func (s *ComponentStore) Add(c Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.components {
		if existing.ID == c.ID {
			return fmt.Errorf("component %q already exists", c.ID)
		}
	}
	s.components = append(s.components, c.Clone())
	return nil
}

// Delete removes a committed component, discarding its draft if open
func (s *ComponentStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.components {
		if c.ID == id {
			s.components = append(s.components[:i], s.components[i+1:]...)
			if s.draft != nil && s.draft.ID == id {
				s.draft = nil
			}
			return true
		}
	}
	return false
}

// Edit enters edit mode on a deep copy of the component. Any open draft is discarded.
func (s *ComponentStore) Edit(id string) (Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.components {
		if c.ID == id {
			draft := c.Clone()
			s.draft = &draft
			return draft.Clone(), nil
		}
	}
	return Component{}, fmt.Errorf("component %q not found", id)
}

// Draft returns a copy of the open draft
func (s *ComponentStore) Draft() (Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return Component{}, false
	}
	return s.draft.Clone(), true
}

// UpdateDraft applies fn to the open draft
func (s *ComponentStore) UpdateDraft(fn func(*Component)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNoDraft
	}
	fn(s.draft)
	return nil
}

// Save replaces the committed component with the draft and leaves edit mode
func (s *ComponentStore) Save() (Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return Component{}, ErrNoDraft
	}
	for i, c := range s.components {
		if c.ID == s.draft.ID {
			s.components[i] = s.draft.Clone()
			saved := s.draft.Clone()
			s.draft = nil
			return saved, nil
		}
	}
	id := s.draft.ID
	s.draft = nil
	return Component{}, fmt.Errorf("component %q was removed while editing", id)
}

// Discard drops the draft without touching the committed component
func (s *ComponentStore) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}
