package sieve

import (
	"errors"
	"fmt"
	"sort"
)

// Entry is the serializable form of one knowledge base row.
type Entry struct {
	Name   string              `json:"name" yaml:"name" toml:"name"`
	Causes map[string][]string `json:"causes" yaml:"causes" toml:"causes"`
}

// Document is the on-disk layout of a knowledge file.
type Document struct {
	Symptoms []Entry `json:"symptoms" yaml:"symptoms" toml:"symptoms"`
}

// KnowledgeBase maps every symptom to its per-category diagnosis lists. It is
// immutable once built.
type KnowledgeBase struct {
	symptoms []Symptom
	rows     map[Symptom]map[Category][]string
	index    map[string]Symptom
}

// NewKnowledgeBase validates the entries and builds an immutable table.
// Symptom order follows the entry order.
func NewKnowledgeBase(entries []Entry) (*KnowledgeBase, error) {
	if len(entries) == 0 {
		return nil, errors.New("knowledge base has no symptoms")
	}
	kb := &KnowledgeBase{
		symptoms: make([]Symptom, 0, len(entries)),
		rows:     make(map[Symptom]map[Category][]string, len(entries)),
		index:    make(map[string]Symptom, len(entries)),
	}
	for i, entry := range entries {
		name := NormalizeText(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: empty symptom name", i+1)
		}
		key := normalizeKey(name)
		if prev, ok := kb.index[key]; ok {
			return nil, fmt.Errorf("entry %d: duplicate symptom %q (already defined as %q)", i+1, name, prev)
		}
		sym := Symptom(name)
		row := make(map[Category][]string, len(categoryOrder))
		labels := make([]string, 0, len(entry.Causes))
		for label := range entry.Causes {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			cat, err := ParseCategory(label)
			if err != nil {
				return nil, fmt.Errorf("symptom %q: %w", name, err)
			}
			row[cat] = append(row[cat], NormalizeAll(entry.Causes[label])...)
		}
		kb.index[key] = sym
		kb.symptoms = append(kb.symptoms, sym)
		kb.rows[sym] = row
	}
	return kb, nil
}

// Symptoms returns the symptom names in table order.
func (kb *KnowledgeBase) Symptoms() []Symptom {
	out := make([]Symptom, len(kb.symptoms))
	copy(out, kb.symptoms)
	return out
}

// Has reports whether sym is a canonical symptom of the table.
func (kb *KnowledgeBase) Has(sym Symptom) bool {
	_, ok := kb.rows[sym]
	return ok
}

// Resolve maps a free-form label (as delivered by a drop or typed on the
// command line) to its canonical symptom.
func (kb *KnowledgeBase) Resolve(label string) (Symptom, error) {
	key := normalizeKey(label)
	if key == "" {
		return "", fmt.Errorf("%w: empty label", ErrInvalidSymptom)
	}
	sym, ok := kb.index[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymptom, NormalizeText(label))
	}
	return sym, nil
}

// Diagnoses returns a copy of the authored list for (sym, cat). Absent pairs
// yield an empty slice.
func (kb *KnowledgeBase) Diagnoses(sym Symptom, cat Category) []string {
	row, ok := kb.rows[sym]
	if !ok {
		return []string{}
	}
	return append([]string{}, row[cat]...)
}

// Entries converts the table back into its serializable form.
func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, 0, len(kb.symptoms))
	for _, sym := range kb.symptoms {
		row := kb.rows[sym]
		causes := make(map[string][]string, len(row))
		for _, cat := range categoryOrder {
			if list := row[cat]; len(list) > 0 {
				causes[string(cat)] = append([]string(nil), list...)
			}
		}
		out = append(out, Entry{Name: string(sym), Causes: causes})
	}
	return out
}
