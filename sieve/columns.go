package sieve

import "strings"

// ColumnCandidates lists the header names that identify each column of a
// long-format knowledge CSV/TSV. Matching ignores case.
type ColumnCandidates struct {
	Symptom   []string `json:"symptom"`
	Category  []string `json:"category"`
	Diagnosis []string `json:"diagnosis"`
}

// DefaultColumnCandidates returns the built-in header names.
func DefaultColumnCandidates() ColumnCandidates {
	return ColumnCandidates{
		Symptom:   []string{"symptom", "complaint", "presenting complaint", "症状"},
		Category:  []string{"category", "cause", "sieve", "カテゴリ", "カテゴリー"},
		Diagnosis: []string{"diagnosis", "differential", "label", "診断"},
	}
}

// withDefaults fills nil fields from DefaultColumnCandidates. An empty,
// non-nil list is kept and disables detection for that column.
func (c ColumnCandidates) withDefaults() ColumnCandidates {
	defaults := DefaultColumnCandidates()
	if c.Symptom == nil {
		c.Symptom = defaults.Symptom
	}
	if c.Category == nil {
		c.Category = defaults.Category
	}
	if c.Diagnosis == nil {
		c.Diagnosis = defaults.Diagnosis
	}
	return c
}

func matchesAny(cell string, names []string) bool {
	for _, name := range names {
		if strings.EqualFold(cell, name) {
			return true
		}
	}
	return false
}

func findColumn(header []string, names []string) int {
	for i, col := range header {
		if matchesAny(col, names) {
			return i
		}
	}
	return -1
}
