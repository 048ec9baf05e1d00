package sieve

import (
	"fmt"
	"strings"
)

// Symptom is a canonical presenting complaint defined by the knowledge base.
type Symptom string

// Category is one of the six causal classifications of the abridged sieve.
type Category string

const (
	CategoryMetabolic     Category = "Metabolic"
	CategoryEnvironmental Category = "Environmental"
	CategoryTechnique     Category = "Technique"
	CategoryReactive      Category = "Reactive"
	CategoryInfection     Category = "Infection"
	CategoryCongenital    Category = "Congenital/Cancer"
)

// Badge is the mnemonic shown next to every sieve card.
const Badge = "METRICC"

var categoryOrder = []Category{
	CategoryMetabolic,
	CategoryEnvironmental,
	CategoryTechnique,
	CategoryReactive,
	CategoryInfection,
	CategoryCongenital,
}

// Categories returns the canonical categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory maps a label to its canonical category. Matching ignores case
// and surrounding whitespace.
func ParseCategory(label string) (Category, error) {
	key := normalizeKey(label)
	for _, c := range categoryOrder {
		if normalizeKey(string(c)) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, strings.TrimSpace(label))
}

// Group holds the diagnoses of one category within a view.
type Group struct {
	Category  Category `json:"category"`
	Diagnoses []string `json:"diagnoses"`
}

// View is the display-ready sieve for one symptom or for a whole selection.
// Groups always follow the canonical category order.
type View struct {
	Title    string    `json:"title"`
	Combined bool      `json:"combined"`
	Symptoms []Symptom `json:"symptoms"`
	Groups   []Group   `json:"groups"`
}

// Diagnoses returns the labels listed under c, or nil when the view has none.
func (v View) Diagnoses(c Category) []string {
	for _, g := range v.Groups {
		if g.Category == c {
			return g.Diagnoses
		}
	}
	return nil
}

// Empty reports whether no category carries a diagnosis.
func (v View) Empty() bool {
	for _, g := range v.Groups {
		if len(g.Diagnoses) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers may mutate the result freely.
func (v View) Clone() View {
	out := View{
		Title:    v.Title,
		Combined: v.Combined,
		Symptoms: append([]Symptom(nil), v.Symptoms...),
		Groups:   make([]Group, len(v.Groups)),
	}
	for i, g := range v.Groups {
		out.Groups[i] = Group{Category: g.Category, Diagnoses: append([]string{}, g.Diagnoses...)}
	}
	return out
}

// CombinedTitle formats the heading of a combined card.
func CombinedTitle(symptoms []Symptom) string {
	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = string(s)
	}
	return fmt.Sprintf("Combined (%s)", strings.Join(names, ", "))
}
