package sieve

import "errors"

var (
	// ErrInvalidSymptom is returned when a label does not name a symptom of
	// the loaded knowledge base.
	ErrInvalidSymptom = errors.New("invalid symptom name")
	// ErrInvalidCategory is returned when a knowledge source uses a category
	// outside the canonical six.
	ErrInvalidCategory = errors.New("invalid category")
)
