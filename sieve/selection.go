package sieve

// Selection is the set of symptoms currently placed on the canvas. Members
// are unique and keep their insertion order for display. The zero value is
// an empty selection ready for use. A nil *Selection reads as empty and
// ignores writes.
type Selection struct {
	order []Symptom
	set   map[Symptom]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Add inserts sym unless it is already present and reports whether the
// selection changed.
func (s *Selection) Add(sym Symptom) bool {
	if s == nil {
		return false
	}
	if s.set == nil {
		s.set = make(map[Symptom]struct{})
	}
	if _, ok := s.set[sym]; ok {
		return false
	}
	s.set[sym] = struct{}{}
	s.order = append(s.order, sym)
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.order = nil
	s.set = nil
}

// Has reports membership of sym.
func (s *Selection) Has(sym Symptom) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[sym]
	return ok
}

// Len returns the number of selected symptoms.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return s.Len() == 0
}

// Symptoms returns the members in insertion order.
func (s *Selection) Symptoms() []Symptom {
	if s == nil {
		return nil
	}
	out := make([]Symptom, len(s.order))
	copy(out, s.order)
	return out
}
