package sieve

import (
	"errors"
	"sync"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Service owns the knowledge base and the current selection and serves the
// views rendered by the adapters.
type Service struct {
	kb *KnowledgeBase

	mu  sync.RWMutex
	sel *Selection

	views  *cache.Cache
	logger *zap.Logger
}

// NewService constructs a service over kb with an empty selection.
func NewService(kb *KnowledgeBase, logger *zap.Logger) (*Service, error) {
	if kb == nil {
		return nil, errors.New("knowledge base is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		kb:     kb,
		sel:    NewSelection(),
		views:  cache.New(cache.NoExpiration, 0),
		logger: logger,
	}
	logger.Debug("sieve service ready", zap.Int("symptoms", len(kb.symptoms)))
	return s, nil
}

// Knowledge returns the immutable table the service was built with.
func (s *Service) Knowledge() *KnowledgeBase {
	return s.kb
}

// AddSymptom resolves label and adds the symptom to the selection. Unknown
// labels are rejected with ErrInvalidSymptom and leave the selection
// untouched. added is false when the symptom was already selected.
func (s *Service) AddSymptom(label string) (sym Symptom, added bool, err error) {
	sym, err = s.kb.Resolve(label)
	if err != nil {
		s.logger.Debug("symptom rejected", zap.String("label", label), zap.Error(err))
		return "", false, err
	}
	s.mu.Lock()
	added = s.sel.Add(sym)
	size := s.sel.Len()
	s.mu.Unlock()
	if added {
		s.logger.Info("symptom selected", zap.String("symptom", string(sym)), zap.Int("selected", size))
	}
	return sym, added, nil
}

// ClearSelection empties the selection.
func (s *Service) ClearSelection() {
	s.mu.Lock()
	n := s.sel.Len()
	s.sel.Clear()
	s.mu.Unlock()
	if n > 0 {
		s.logger.Info("selection cleared", zap.Int("removed", n))
	}
}

// Selected returns the selected symptoms in insertion order.
func (s *Service) Selected() []Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.Symptoms()
}

// PerSymptomView returns the sieve of a single symptom.
func (s *Service) PerSymptomView(sym Symptom) View {
	key := string(sym)
	if v, ok := s.views.Get(key); ok {
		return v.(View).Clone()
	}
	view := PerSymptomView(s.kb, sym)
	if s.kb.Has(sym) {
		s.views.Set(key, view.Clone(), cache.NoExpiration)
	}
	return view
}

// CombinedView unions the sieves of every selected symptom.
func (s *Service) CombinedView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CombinedView(s.kb, s.sel)
}

// Views returns what the results pane shows: the combined card followed by
// one card per selected symptom. Nothing is returned for an empty selection.
func (s *Service) Views() []View {
	s.mu.RLock()
	if s.sel.Empty() {
		s.mu.RUnlock()
		return nil
	}
	combined := CombinedView(s.kb, s.sel)
	symptoms := s.sel.Symptoms()
	s.mu.RUnlock()

	out := make([]View, 0, len(symptoms)+1)
	out = append(out, combined)
	for _, sym := range symptoms {
		out = append(out, s.PerSymptomView(sym))
	}
	return out
}
